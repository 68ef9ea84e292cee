package config

// Balance holds gameplay balance configuration.
type Balance struct {
	// Starting values
	StartingMoney float64 `yaml:"starting_money" json:"starting_money"`

	// Warehouse
	WarehouseBuildCost        float64 `yaml:"warehouse_build_cost" json:"warehouse_build_cost"`
	WarehouseUpgradeBaseCost  float64 `yaml:"warehouse_upgrade_base_cost" json:"warehouse_upgrade_base_cost"`
	WarehouseBaseCapacity     int     `yaml:"warehouse_base_capacity" json:"warehouse_base_capacity"`
	WarehouseCapacityIncrease int     `yaml:"warehouse_capacity_increase" json:"warehouse_capacity_increase"`

	// Legacy single-good factories
	FactoryBuildCost       float64 `yaml:"factory_build_cost" json:"factory_build_cost"`
	FactoryUpgradeBaseCost float64 `yaml:"factory_upgrade_base_cost" json:"factory_upgrade_base_cost"`
	FactoryBaseOutput      int     `yaml:"factory_base_output" json:"factory_base_output"`
	FactoryOutputIncrease  int     `yaml:"factory_output_increase" json:"factory_output_increase"`

	// Production facilities (farm / factory / ranch)
	FarmBuildCostBase    float64 `yaml:"farm_build_cost_base" json:"farm_build_cost_base"`
	FactoryBuildCostBase float64 `yaml:"factory_build_cost_base" json:"factory_build_cost_base"`
	RanchBuildCostBase   float64 `yaml:"ranch_build_cost_base" json:"ranch_build_cost_base"`

	// Roads and trucking
	RoadBuildCost        float64 `yaml:"road_build_cost" json:"road_build_cost"`
	TruckCapacity        int     `yaml:"truck_capacity" json:"truck_capacity"`
	LogisticsCostPer100  float64 `yaml:"logistics_cost_per_100" json:"logistics_cost_per_100"`

	// Unlocking
	UnlockBaseCost   float64 `yaml:"unlock_base_cost" json:"unlock_base_cost"`
	UnlockCostGrowth float64 `yaml:"unlock_cost_growth" json:"unlock_cost_growth"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		StartingMoney:             50000,
		WarehouseBuildCost:        5000,
		WarehouseUpgradeBaseCost:  3000,
		WarehouseBaseCapacity:     60,
		WarehouseCapacityIncrease: 30,
		FactoryBuildCost:          10000,
		FactoryUpgradeBaseCost:    5000,
		FactoryBaseOutput:         15,
		FactoryOutputIncrease:     8,
		FarmBuildCostBase:         8000,
		FactoryBuildCostBase:      12000,
		RanchBuildCostBase:        10000,
		RoadBuildCost:             2000,
		TruckCapacity:             100,
		LogisticsCostPer100:       0.1,
		UnlockBaseCost:            5000,
		UnlockCostGrowth:          1.5,
	}
}

// Casual returns easier balance for casual play.
func Casual() Balance {
	cfg := Default()
	cfg.StartingMoney = 100000
	cfg.WarehouseBuildCost = 3000
	cfg.RoadBuildCost = 1000
	cfg.UnlockCostGrowth = 1.3
	return cfg
}

// Hard returns harder balance for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.StartingMoney = 25000
	cfg.WarehouseBaseCapacity = 40
	cfg.LogisticsCostPer100 = 0.2
	cfg.UnlockCostGrowth = 1.7
	return cfg
}
