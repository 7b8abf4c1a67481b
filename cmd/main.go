package main

import (
	"github.com/davidgrezoski/vitaflow/config"
	"github.com/davidgrezoski/vitaflow/routes"
	"github.com/davidgrezoski/vitaflow/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()
	r := routes.SetupRouter()
	r.Run(":8080")
}
