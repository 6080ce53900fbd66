package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/indianiiot/telemetry-backend/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Devices are provisioned out of band: the API deliberately has no
// registration endpoint, the token printed here goes into the firmware.

const configPath = "configs/.env"

const (
	deviceGetQ = `
SELECT device_id, device_token
FROM devices
WHERE device_id = $1
`
	deviceInsertQ = `
INSERT INTO devices (device_id, owner_id, device_token, device_type)
SELECT $1, u.id, $2, $3
FROM users u
WHERE u.email = $4
RETURNING device_id
`
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewDevelopment()))

	deviceID := flag.String("device", "", "device id to register (e.g. esp32-kitchen-01)")
	deviceType := flag.String("type", "gas_sensor", "device type")
	ownerEmail := flag.String("owner", "", "email of the owning user")
	flag.Parse()

	if *deviceID == "" || *ownerEmail == "" {
		flag.Usage()
		os.Exit(2)
	}

	conf := config.MustLoad(configPath)
	conn, err := sqlx.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("failed to connect to the database", zap.Error(err))
	}
	defer conn.Close()

	var existing struct {
		DeviceID    string `db:"device_id"`
		DeviceToken string `db:"device_token"`
	}
	if err := conn.Get(&existing, deviceGetQ, *deviceID); err == nil {
		fmt.Printf("device %s already registered, token: %s\n", existing.DeviceID, existing.DeviceToken)
		return
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		zap.L().Fatal("failed to generate device token", zap.Error(err))
	}
	token := hex.EncodeToString(buf)

	var created string
	if err := conn.Get(&created, deviceInsertQ, *deviceID, token, *deviceType, *ownerEmail); err != nil {
		zap.L().Fatal(
			"failed to register device, does the owner exist?",
			zap.String("owner", *ownerEmail),
			zap.Error(err),
		)
	}

	fmt.Printf("registered device %s\ntoken: %s\n", created, token)
}
