package db

import "fmt"

// DBConfigFromYaml builds the runtime DB config from the yaml config file
// values. Username and password may have been overridden from environment
// variables before this is called.
func DBConfigFromYaml(conf DBConfigYaml) DBConfig {
	uri := conf.ConnectionStr
	if conf.Username != "" || conf.Password != "" {
		uri = fmt.Sprintf(`mongodb%s://%s:%s@%s`, conf.ConnectionPrefix, conf.Username, conf.Password, conf.ConnectionStr)
	} else if conf.ConnectionPrefix != "" {
		uri = fmt.Sprintf(`mongodb%s://%s`, conf.ConnectionPrefix, conf.ConnectionStr)
	}

	dbName := conf.DBName
	if dbName == "" {
		dbName = "medsklsDB"
	}

	return DBConfig{
		URI:             uri,
		DBName:          dbName,
		Timeout:         conf.Timeout,
		NoCursorTimeout: conf.UseNoCursorTimeout,
		MaxPoolSize:     uint64(conf.MaxPoolSize),
		IdleConnTimeout: conf.IdleConnTimeout,
	}
}
