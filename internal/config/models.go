package config

// ServerConfig represents the configuration for the HTTP server
type ServerConfig struct {
	ListenAddress string
}

// ModelsConfig represents the locations of the model artifacts
type ModelsConfig struct {
	SkinTypePath              string
	LabelEncodersPath         string
	FeatureColumnsPath        string
	RoutineDir                string
	RoutineFeatureColumnsPath string
}

// CatalogConfig represents the configuration for the product catalog
type CatalogConfig struct {
	Path string
}

// StoreConfig represents the configuration for the account store
type StoreConfig struct {
	Type        string
	SQLitePath  string
	MySQLDSN    string
	PostgresDSN string
}

// GetServer returns the HTTP server configuration
func (c *Config) GetServer() ServerConfig {
	return ServerConfig{
		ListenAddress: c.GetString("server.listen_address"),
	}
}

// GetModels returns the model artifact configuration
func (c *Config) GetModels() ModelsConfig {
	return ModelsConfig{
		SkinTypePath:              c.GetString("models.skin_type_path"),
		LabelEncodersPath:         c.GetString("models.label_encoders_path"),
		FeatureColumnsPath:        c.GetString("models.feature_columns_path"),
		RoutineDir:                c.GetString("models.routine_dir"),
		RoutineFeatureColumnsPath: c.GetString("models.routine_feature_columns_path"),
	}
}

// GetCatalog returns the product catalog configuration
func (c *Config) GetCatalog() CatalogConfig {
	return CatalogConfig{
		Path: c.GetString("catalog.path"),
	}
}

// GetStore returns the account store configuration
func (c *Config) GetStore() StoreConfig {
	return StoreConfig{
		Type:        c.GetString("store.type"),
		SQLitePath:  c.GetString("store.sqlite_path"),
		MySQLDSN:    c.GetString("store.mysql_dsn"),
		PostgresDSN: c.GetString("store.postgres_dsn"),
	}
}
