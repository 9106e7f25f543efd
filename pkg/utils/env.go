package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/xerrors"
)

type EnvVars struct {
	Host        string // HTTP API host
	Port        int    // HTTP API port
	GrpcPort    int    // gRPC health service port
	RabbitHost  string // Empty: results are not published
	RabbitUser  string
	RabbitPass  string
	ResultQueue string
	NodeLog     bool
	ServerLog   bool
}

// Loading .env file if it exists
// It will not override already existing env vars
func LoadDotEnv() {
	_ = godotenv.Load()
}

func ReadEnvVars() (EnvVars, error) {
	LoadDotEnv()
	port, err := readIntEnvVarOr("PORT", 8080)
	if err != nil {
		return EnvVars{}, err
	}
	grpcPort, err := readIntEnvVarOr("GRPC_PORT", 50051)
	if err != nil {
		return EnvVars{}, err
	}
	return EnvVars{
		Host:        readStringEnvVarOr("HOST", ""),
		Port:        port,
		GrpcPort:    grpcPort,
		RabbitHost:  readStringEnvVarOr("RABBIT_HOST", ""),
		RabbitUser:  readStringEnvVarOr("RABBIT_USER", "guest"),
		RabbitPass:  readStringEnvVarOr("RABBIT_PASSWORD", "guest"),
		ResultQueue: readStringEnvVarOr("RESULT_QUEUE", "result"),
		NodeLog:     readBoolEnvVarOr("NODE_LOG", false),
		ServerLog:   readBoolEnvVarOr("SERVER_LOG", false),
	}, nil
}

// RabbitURL is empty when no broker is configured
func (e EnvVars) RabbitURL() string {
	if e.RabbitHost == "" {
		return ""
	}
	return fmt.Sprintf("amqp://%s:%s@%s:5672/", e.RabbitUser, e.RabbitPass, e.RabbitHost)
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", xerrors.Errorf("%s not set", name)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

// Unset variables fall back to `or`; malformed ones are an error
func readIntEnvVarOr(name string, or int) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, xerrors.Errorf("could not convert %s to a number: %w", name, err)
	}
	return value, nil
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
