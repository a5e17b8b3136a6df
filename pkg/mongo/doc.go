// Package mongo provides MongoDB connection management driven by environment
// configuration.
//
// Config either carries a full MONGODB_URL or the parts (scheme, host,
// credentials) used to assemble one. New dials with retry and pings before
// returning; Healthcheck plugs into httpserver.ReadinessHandler.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
//
// Connection failures are wrapped with ErrFailedToConnectToMongo.
package mongo
