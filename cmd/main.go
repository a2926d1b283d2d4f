package main

import (
	"github.com/Tshegofatso85/Footprint-Logger/config"
	"github.com/Tshegofatso85/Footprint-Logger/routes"
	"github.com/Tshegofatso85/Footprint-Logger/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
