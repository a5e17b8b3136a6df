// Package redis connects to Redis with go-redis/v9.
//
// Connect retries the initial ping, Healthcheck plugs into
// httpserver.ReadinessHandler. Config.KeyPrefix namespaces the keys written
// by stores built on the returned client.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
