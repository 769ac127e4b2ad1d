package main

import (
	"fmt"

	"Social_Model/internal/config"
	"Social_Model/internal/pkg"
	"Social_Model/internal/repository/rdb"
	"Social_Model/internal/router"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		pkg.Error.Fatalf("load config: %v", err)
	}

	db, err := rdb.Open(conf.DBDriver, conf.DSN(), conf.LogLevel())
	if err != nil {
		pkg.Error.Fatalf("%v", err)
	}

	// 建表
	if err := rdb.Migrate(db); err != nil {
		pkg.Error.Fatalf("unable to create tables: %v", err)
	}
	pkg.Info.Printf("tables ready on %s", conf.DBDriver)

	r := router.InitRouter(rdb.NewStore(db))
	if err := r.Run(fmt.Sprintf(":%d", conf.Port)); err != nil {
		pkg.Error.Fatalf("server stopped: %v", err)
	}
}
