package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{
			name: "memory storage skips postgres",
			modify: func(c *Config) {
				c.Storage.Driver = StorageMemory
				c.Kafka.Enabled = false
			},
		},
		{
			name: "postgres storage requires credentials",
			modify: func(c *Config) {
				c.Storage.Driver = StoragePostgres
				c.Kafka.Enabled = false
			},
			wantErr: true,
		},
		{
			name: "postgres storage with credentials",
			modify: func(c *Config) {
				c.Storage.Driver = StoragePostgres
				c.Postgres.User = "app"
				c.Postgres.Password = "secret"
				c.Kafka.Enabled = false
			},
		},
		{
			name: "unknown cache driver",
			modify: func(c *Config) {
				c.Storage.Driver = StorageMemory
				c.Cache.Driver = "memcached"
			},
			wantErr: true,
		},
		{
			name: "enabled kafka needs brokers",
			modify: func(c *Config) {
				c.Storage.Driver = StorageMemory
				c.Kafka.Enabled = true
				c.Kafka.Brokers = nil
			},
			wantErr: true,
		},
		{
			name: "unknown env",
			modify: func(c *Config) {
				c.Storage.Driver = StorageMemory
				c.Env = "dev"
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			tc.modify(&c)

			err := c.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPostgres_URL(t *testing.T) {
	p := Postgres{Host: "db", Port: 5432, DBName: "fulfillment", User: "app", Password: "p@ss", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/fulfillment?sslmode=disable", p.URL())
	assert.Equal(t, "host=db port=5432 user=app password=p@ss dbname=fulfillment sslmode=disable", p.DSN())
}

func TestKafka_DLQTopic(t *testing.T) {
	k := Kafka{StockTopic: "stock-adjustments"}
	assert.Equal(t, "stock-adjustments-dlq", k.DLQTopic())
}
