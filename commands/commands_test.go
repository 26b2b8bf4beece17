package commands

import (
	"context"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"HelperBot/router"

	"github.com/andersfylling/disgord"
	"github.com/sirupsen/logrus"
)

const (
	ownerID disgord.Snowflake = 100
	userID  disgord.Snowflake = 200
	botID   disgord.Snowflake = 300
)

type fakeSender struct {
	mu      sync.Mutex
	sent    []interface{}
	deleted []disgord.Snowflake
}

func (f *fakeSender) SendMsg(_ context.Context, _ disgord.Snowflake, data ...interface{}) (*disgord.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, data...)
	return &disgord.Message{}, nil
}

func (f *fakeSender) DeleteMessage(_ context.Context, _, msgID disgord.Snowflake, _ ...disgord.Flag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, msgID)
	return nil
}

func testRouter(t *testing.T) *router.Router {
	t.Helper()
	l := logrus.New()
	l.Out = io.Discard
	r, err := Build(router.Config{
		Delimiters: []string{", ", ","},
		BotID:      botID,
		Owners:     []disgord.Snowflake{ownerID},
		Logger:     l,
	}, "2.0", time.Now())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return r
}

func dispatch(t *testing.T, r *router.Router, author disgord.Snowflake, content string, mentions ...*disgord.User) *fakeSender {
	t.Helper()
	s := &fakeSender{}
	r.Dispatch(context.Background(), s, &disgord.Message{
		ID:        42,
		ChannelID: 7,
		Content:   content,
		Author:    &disgord.User{ID: author, Username: "tester", Avatar: "abc"},
		Mentions:  mentions,
	})
	return s
}

func TestEchoText(t *testing.T) {
	if got := EchoText(""); got != "Cannot send an empty message" {
		t.Errorf("EchoText(\"\") = %q", got)
	}
	for _, in := range []string{"hello", "  spaced  ", "a, b,c"} {
		if got := EchoText(in); got != in {
			t.Errorf("EchoText(%q) = %q, want it unchanged", in, got)
		}
	}
}

func TestICAO(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"AB 1", "Alpha, Bravo,  , One"},
		{"ab", "Alpha, Bravo"},
		{"0", "Ten"},
		{"9.", "Nine, Stop"},
		{"fox", "Foxtrott, Oskar, X-Ray"},
		{"?z", "?, Zulu"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ICAO(tt.in); got != tt.want {
			t.Errorf("ICAO(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestICAOTable(t *testing.T) {
	want := "Alpha, Bravo, Charlie, Delta, Echo, Foxtrott, Golf, Hotel, India, Juliet, Kilo, Lima, Mike, " +
		"November, Oskar, Papa, Quebec, Romeo, Sierra, Tango, Uniform, Victor, Whiskey, X-Ray, Yankee, Zulu, " +
		"One, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Stop"
	if got := ICAO("abcdefghijklmnopqrstuvwxyz1234567890."); got != want {
		t.Errorf("ICAO(alphabet) = %q", got)
	}
}

func TestAvatarURL(t *testing.T) {
	animated := AvatarURL(&disgord.User{ID: 123, Avatar: "a_abc"})
	if !strings.Contains(animated, "a_abc") || !strings.Contains(animated, ".gif") {
		t.Errorf("animated avatar URL = %q", animated)
	}
	still := AvatarURL(&disgord.User{ID: 123, Avatar: "abc"})
	if !strings.Contains(still, "abc") || strings.Contains(still, ".gif") {
		t.Errorf("avatar URL = %q", still)
	}
	def := DefaultAvatarURL(&disgord.User{ID: 123, Avatar: "abc"})
	if strings.Contains(def, "abc") || !strings.Contains(def, "embed/avatars") {
		t.Errorf("default avatar URL = %q", def)
	}
	if got := AvatarURL(nil); got != AvatarFailed {
		t.Errorf("AvatarURL(nil) = %q", got)
	}
}

func TestChangelogEmbed(t *testing.T) {
	e := ChangelogEmbed("2.0")
	if e.Color != 0xC27C0E || len(e.Fields) != 1 {
		t.Fatalf("embed = %+v", e)
	}
	if e.Fields[0].Name != "Version 2.0" || !e.Fields[0].Inline {
		t.Errorf("field = %+v", e.Fields[0])
	}

	e = ChangelogEmbed("1.0")
	if e.Fields[0].Name != "Unknown Version" || !strings.HasSuffix(e.Fields[0].Value, "Valid versions are:\n2.0") {
		t.Errorf("unknown version field = %+v", e.Fields[0])
	}
}

func TestPingText(t *testing.T) {
	sent := time.Unix(100, 0)
	if got, want := PingText(sent, sent.Add(250*time.Millisecond)), "Pong, this message took 250ms"; got != want {
		t.Errorf("PingText() = %q, want %q", got, want)
	}
}

func TestCountPlan(t *testing.T) {
	tests := []struct {
		args  []string
		nums  []int
		delay time.Duration
	}{
		{[]string{"1", "3"}, []int{1, 2, 3}, time.Second},
		{[]string{"3", "1", "2"}, []int{3, 2, 1}, 2 * time.Second},
		{[]string{"5", "5", "0.5"}, []int{5}, 500 * time.Millisecond},
		{[]string{"-1", "1", "0"}, []int{-1, 0, 1}, 0},
		{[]string{"1", "25"}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25}, time.Second},
		{[]string{"1", "2", "10"}, []int{1, 2}, 10 * time.Second},
	}
	for _, tt := range tests {
		nums, delay, err := CountPlan(tt.args)
		if err != nil {
			t.Errorf("CountPlan(%q) error = %v", tt.args, err)
			continue
		}
		if !reflect.DeepEqual(nums, tt.nums) || delay != tt.delay {
			t.Errorf("CountPlan(%q) = %v, %s, want %v, %s", tt.args, nums, delay, tt.nums, tt.delay)
		}
	}

	bad := [][]string{
		nil,
		{"1"},
		{"a", "2"},
		{"1", "b"},
		{"1", "2", "-1"},
		{"1", "2", "11"},
		{"1", "100"},
		{"1", "26"},
		{"1", "2", "3", "4"},
		{"9223372036854775807", "-9223372036854775808"},
		{"-9223372036854775808", "9223372036854775807"},
		{"2147483647", "-2147483648"},
		{"-2147483648", "2147483647"},
		{"1", "2", "NaN"},
		{"1", "2", "Inf"},
		{"1", "2", "-Inf"},
		{"1", "2", "1e300"},
	}
	for _, args := range bad {
		if _, _, err := CountPlan(args); err == nil {
			t.Errorf("CountPlan(%q) error = nil", args)
		}
	}
}

func TestTextCommands(t *testing.T) {
	r := testRouter(t)

	s := dispatch(t, r, userID, "-echo hello, world")
	if !reflect.DeepEqual(s.sent, []interface{}{"hello, world"}) {
		t.Errorf("echo sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-echo")
	if !reflect.DeepEqual(s.sent, []interface{}{EmptyMessage}) {
		t.Errorf("empty echo sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-say hi")
	if len(s.sent) != 1 {
		t.Fatalf("say sent %v", s.sent)
	}
	if p, ok := s.sent[0].(*disgord.CreateMessageParams); !ok || p.Content != "hi" || !p.Tts {
		t.Errorf("say sent %#v, want TTS message", s.sent[0])
	}

	s = dispatch(t, r, userID, "-whisper psst")
	if !reflect.DeepEqual(s.deleted, []disgord.Snowflake{42}) {
		t.Errorf("whisper deleted %v, want the invoking message", s.deleted)
	}
	if len(s.sent) != 1 {
		t.Fatalf("whisper sent %v", s.sent)
	}
	if p, ok := s.sent[0].(*disgord.CreateMessageParams); !ok || p.Content != "psst" || !p.Tts {
		t.Errorf("whisper sent %#v", s.sent[0])
	}

	s = dispatch(t, r, userID, "-code AB 1")
	if !reflect.DeepEqual(s.sent, []interface{}{"Alpha, Bravo,  , One"}) {
		t.Errorf("code sent %v", s.sent)
	}
}

func TestTestCommands(t *testing.T) {
	r := testRouter(t)

	s := dispatch(t, r, userID, "-active")
	if !reflect.DeepEqual(s.sent, []interface{}{ActiveText}) {
		t.Errorf("active sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-ping")
	if len(s.sent) != 1 || !strings.HasPrefix(s.sent[0].(string), "Pong, this message took ") {
		t.Errorf("ping sent %v", s.sent)
	}
}

func TestUtilCommands(t *testing.T) {
	r := testRouter(t)

	s := dispatch(t, r, userID, "-avatar <@5>", &disgord.User{ID: 5, Avatar: "a_five"})
	if len(s.sent) != 1 || !strings.Contains(s.sent[0].(string), "a_five") {
		t.Errorf("avatar of mention sent %v", s.sent)
	}

	// A bot mention used as the prefix does not count as the target.
	s = dispatch(t, r, userID, "<@300> avatar", &disgord.User{ID: botID, Avatar: "botavatar"})
	if len(s.sent) != 1 || strings.Contains(s.sent[0].(string), "botavatar") {
		t.Errorf("avatar via mention prefix sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-default_avatar")
	if len(s.sent) != 1 || !strings.Contains(s.sent[0].(string), "embed/avatars") {
		t.Errorf("default_avatar sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-changelog")
	if e, ok := s.sent[0].(*disgord.Embed); !ok || e.Fields[0].Name != "Version 2.0" {
		t.Errorf("changelog sent %v", s.sent)
	}
	s = dispatch(t, r, userID, "-changelog 0.1")
	if e, ok := s.sent[0].(*disgord.Embed); !ok || e.Fields[0].Name != "Unknown Version" {
		t.Errorf("changelog 0.1 sent %v", s.sent)
	}

	s = dispatch(t, r, userID, "-count 1, 3, 0")
	if !reflect.DeepEqual(s.sent, []interface{}{"1", "2", "3"}) {
		t.Errorf("count sent %v", s.sent)
	}
	s = dispatch(t, r, userID, "-count 1")
	if len(s.sent) != 1 || !strings.HasPrefix(s.sent[0].(string), "Usage: -count ") {
		t.Errorf("bad count sent %v", s.sent)
	}
}

func TestCountStopsOnCancel(t *testing.T) {
	r := testRouter(t)
	s := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Dispatch(ctx, s, &disgord.Message{
		ChannelID: 7,
		Content:   "-count 1, 5, 10",
		Author:    &disgord.User{ID: userID, Username: "tester"},
	})
	if !reflect.DeepEqual(s.sent, []interface{}{"1"}) {
		t.Errorf("sent %v, want only the first number", s.sent)
	}
}

func TestDebugOwnersOnly(t *testing.T) {
	r := testRouter(t)

	if s := dispatch(t, r, userID, "-debug"); len(s.sent) != 0 {
		t.Errorf("debug answered a non-owner: %v", s.sent)
	}

	s := dispatch(t, r, ownerID, "-debug")
	if len(s.sent) != 1 {
		t.Fatalf("debug sent %v", s.sent)
	}
	e, ok := s.sent[0].(*disgord.Embed)
	if !ok {
		t.Fatalf("debug sent %T, want an embed", s.sent[0])
	}
	for _, name := range []string{"echo", "default_avatar", "debug"} {
		if !strings.Contains(e.Description, name) {
			t.Errorf("command table misses %q:\n%s", name, e.Description)
		}
	}
}

func TestHelp(t *testing.T) {
	r := testRouter(t)

	e := HelpEmbed(r, false)
	var groups []string
	for _, f := range e.Fields {
		groups = append(groups, f.Name)
	}
	if want := []string{"General", "Text", "Test", "Util"}; !reflect.DeepEqual(groups, want) {
		t.Errorf("groups for users = %v, want %v", groups, want)
	}
	if e := HelpEmbed(r, true); len(e.Fields) != 5 {
		t.Errorf("owners see %d groups, want 5", len(e.Fields))
	}

	if _, ok := CommandHelp(r, false, "debug"); ok {
		t.Error("debug help shown to a non-owner")
	}
	if _, ok := CommandHelp(r, true, "debug"); !ok {
		t.Error("debug help hidden from an owner")
	}
	c, ok := CommandHelp(r, false, "ICAO")
	if !ok || c.Title != "code" {
		t.Fatalf("help for alias icao = %+v, %v", c, ok)
	}
	if c.Fields[0].Value != "`-code <text>`" {
		t.Errorf("usage = %q", c.Fields[0].Value)
	}

	s := dispatch(t, r, userID, "-help nope")
	if !reflect.DeepEqual(s.sent, []interface{}{"Could not find 'nope'"}) {
		t.Errorf("help nope sent %v", s.sent)
	}
	s = dispatch(t, r, userID, "-help")
	if _, ok := s.sent[0].(*disgord.Embed); !ok {
		t.Errorf("help sent %v", s.sent)
	}
}
