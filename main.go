package main

import (
	"context"
	"time"

	"HelperBot/appinfo"
	"HelperBot/commands"
	"HelperBot/config"
	"HelperBot/hooks"
	"HelperBot/router"

	"github.com/andersfylling/disgord"
	"github.com/sirupsen/logrus"
)

// dispatchTimeout bounds a single command, the longest being a slow count.
const dispatchTimeout = 5 * time.Minute

func main() {
	started := time.Now()
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	env, err := config.LoadEnv()
	if err != nil {
		log.WithError(err).Fatal("Error reading environment")
	}
	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		log.WithError(err).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	cfg, err := config.Load(env.ConfigPath)
	if err != nil {
		log.WithError(err).Fatal("Error reading bot token from config")
	}

	// Owners and the bot's own ID are needed before the first message arrives.
	info, err := (&appinfo.Client{BaseURL: env.DiscordAPI, Token: cfg.Token}).Fetch()
	if err != nil {
		log.WithError(err).Fatal("Error getting application info")
	}
	if uint64(info.ApplicationID) != cfg.ApplicationID {
		log.WithFields(logrus.Fields{
			"configured": cfg.ApplicationID,
			"token":      info.ApplicationID.String(),
		}).Warn("application_id does not match the token's application")
	}

	r, err := commands.Build(router.Config{
		Prefix:          env.Prefix,
		Delimiters:      env.Delimiters,
		BotID:           info.BotID,
		Owners:          info.Owners,
		Bucket:          router.NewBucket(env.CommandRate, env.CommandBurst),
		Before:          hooks.Before,
		After:           hooks.After,
		OnDispatchError: hooks.DispatchError,
		NotFound:        router.NotFoundReply,
		Logger:          log,
	}, cfg.Version, started)
	if err != nil {
		log.WithError(err).Fatal("Error registering commands")
	}

	client, err := disgord.NewClient(disgord.Config{
		BotToken: cfg.Token,
		Logger:   log,
	})
	if err != nil {
		log.WithError(err).Fatal("Error creating client")
	}

	client.On(disgord.EvtReady, func(s disgord.Session, evt *disgord.Ready) {
		if err := client.UpdateStatusString(r.Prefix() + "help @ Version " + cfg.Version); err != nil {
			log.WithError(err).Warn("Failed to set status")
		}
		log.Infof("Successfully connected %s", evt.User.Username)
	})
	client.On(disgord.EvtMessageCreate, func(s disgord.Session, evt *disgord.MessageCreate) {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		r.Dispatch(ctx, s, evt.Message)
	})

	log.WithFields(logrus.Fields{
		"commands": len(r.Commands()),
		"owners":   len(info.Owners),
	}).Info("Starting bot")
	if err = client.StayConnectedUntilInterrupted(context.Background()); err != nil {
		log.WithError(err).Error("An error occurred while running the client")
	}
}
