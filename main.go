package main

import (
	"time"

	"github.com/getsentry/sentry-go"
)

func main() {
	env, err := loadEnv()
	if err != nil {
		panic(err)
	}

	if env.SentryDSN != "" {
		err = sentry.Init(sentry.ClientOptions{
			Dsn:           env.SentryDSN,
			EnableTracing: true,
			// TODO: lower the sample rate once event volume settles
			TracesSampleRate: 1.0,
		})
		if err != nil {
			panic(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	app, err := newApp(NewConfig(env))
	if err != nil {
		panic(err)
	}

	app.start()
}
