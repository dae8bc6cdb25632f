package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	// Set up test environment variables
	os.Setenv("botToken", "test-token")
	os.Setenv("geminiApiKey", "test-key")
	os.Setenv("PORT", "5001")
	os.Setenv("enviroment", "test")
	defer func() {
		os.Unsetenv("botToken")
		os.Unsetenv("geminiApiKey")
		os.Unsetenv("PORT")
		os.Unsetenv("enviroment")
	}()

	// Reset global config
	resetForTesting()

	config, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if config.BotToken != "test-token" {
		t.Errorf("BotToken = %v, want %v", config.BotToken, "test-token")
	}

	if config.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %v, want %v", config.GeminiAPIKey, "test-key")
	}

	if config.Port != "5001" {
		t.Errorf("Port = %v, want %v", config.Port, "5001")
	}

	if config.Environment != "test" {
		t.Errorf("Environment = %v, want %v", config.Environment, "test")
	}
}

func TestAdminIDs(t *testing.T) {
	os.Setenv("ownerId", "111111111111111111")
	os.Setenv("adminIds", "222222222222222222, 333333333333333333,")
	defer func() {
		os.Unsetenv("ownerId")
		os.Unsetenv("adminIds")
	}()

	resetForTesting()
	config, _ := Load()

	if config.OwnerID != "111111111111111111" {
		t.Errorf("OwnerID = %v, want %v", config.OwnerID, "111111111111111111")
	}

	want := []string{"222222222222222222", "333333333333333333"}
	if len(config.AdminIDs) != len(want) {
		t.Fatalf("AdminIDs length = %d, want %d", len(config.AdminIDs), len(want))
	}
	for i, id := range want {
		if config.AdminIDs[i] != id {
			t.Errorf("AdminIDs[%d] = %v, want %v", i, config.AdminIDs[i], id)
		}
	}
}

func TestGetEnv(t *testing.T) {
	os.Setenv("TEST_VAR", "test-value")
	defer os.Unsetenv("TEST_VAR")

	if got := getEnv("TEST_VAR", "default"); got != "test-value" {
		t.Errorf("getEnv() = %v, want %v", got, "test-value")
	}

	if got := getEnv("NON_EXISTENT_VAR", "default"); got != "default" {
		t.Errorf("getEnv() = %v, want %v", got, "default")
	}
}

func TestGetEnvBool(t *testing.T) {
	os.Setenv("TEST_BOOL", "true")
	defer os.Unsetenv("TEST_BOOL")

	if !getEnvBool("TEST_BOOL", false) {
		t.Error("getEnvBool() should return true for 'true'")
	}

	os.Setenv("TEST_BOOL", "off")
	if getEnvBool("TEST_BOOL", true) {
		t.Error("getEnvBool() should return false for 'off'")
	}

	os.Setenv("TEST_BOOL", "banana")
	if !getEnvBool("TEST_BOOL", true) {
		t.Error("getEnvBool() should fall back to the default for unknown values")
	}
}

func TestIsProd(t *testing.T) {
	resetForTesting()
	os.Setenv("enviroment", "prod")
	config, _ := Load()

	if !config.IsProd() {
		t.Error("IsProd() should return true when environment is 'prod'")
	}

	resetForTesting()
	os.Setenv("enviroment", "dev")
	config, _ = Load()

	if config.IsProd() {
		t.Error("IsProd() should return false when environment is not 'prod'")
	}

	os.Unsetenv("enviroment")
}

func TestGet(t *testing.T) {
	resetForTesting()

	// Get should create a new config if none exists
	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil")
	}

	// Get should return the same config on subsequent calls
	config2 := Get()
	if config != config2 {
		t.Error("Get() should return the same config on subsequent calls")
	}
}

func TestDefaultValues(t *testing.T) {
	// Clear all environment variables
	os.Unsetenv("botToken")
	os.Unsetenv("geminiApiKey")
	os.Unsetenv("mongodbUrl")
	os.Unsetenv("dbName")
	os.Unsetenv("PORT")
	os.Unsetenv("dataDir")
	os.Unsetenv("enviroment")

	resetForTesting()
	config, _ := Load()

	if config.DBName != "GeminiBot" {
		t.Errorf("DBName default = %v, want %v", config.DBName, "GeminiBot")
	}

	if config.Port != "5000" {
		t.Errorf("Port default = %v, want %v", config.Port, "5000")
	}

	if config.DataDir != "data" {
		t.Errorf("DataDir default = %v, want %v", config.DataDir, "data")
	}

	if config.Environment != "dev" {
		t.Errorf("Environment default = %v, want %v", config.Environment, "dev")
	}

	if config.UsesMongo() {
		t.Error("UsesMongo() should be false when mongodbUrl is unset")
	}

	if !config.Features.ImageGeneration {
		t.Error("ImageGeneration should default to enabled")
	}

	if config.Features.SentimentAnalysis {
		t.Error("SentimentAnalysis should default to disabled")
	}
}
