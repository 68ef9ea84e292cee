package config

import (
	"os"
	"strconv"
)

// FromEnv loads balance configuration from environment variables.
// Falls back to defaults if variables are not set.
func FromEnv() Balance {
	cfg := Default()

	if val := getEnvFloat("STARTING_MONEY"); val > 0 {
		cfg.StartingMoney = val
	}
	if val := getEnvFloat("WAREHOUSE_BUILD_COST"); val > 0 {
		cfg.WarehouseBuildCost = val
	}
	if val := getEnvInt("WAREHOUSE_BASE_CAPACITY"); val > 0 {
		cfg.WarehouseBaseCapacity = val
	}
	if val := getEnvInt("WAREHOUSE_CAPACITY_INCREASE"); val > 0 {
		cfg.WarehouseCapacityIncrease = val
	}
	if val := getEnvFloat("ROAD_BUILD_COST"); val > 0 {
		cfg.RoadBuildCost = val
	}
	if val := getEnvInt("TRUCK_CAPACITY"); val > 0 {
		cfg.TruckCapacity = val
	}
	if val := getEnvFloat("UNLOCK_BASE_COST"); val > 0 {
		cfg.UnlockBaseCost = val
	}

	// Support preset modes
	if mode := os.Getenv("DIFFICULTY"); mode != "" {
		switch mode {
		case "casual":
			return Casual()
		case "hard":
			return Hard()
		}
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
