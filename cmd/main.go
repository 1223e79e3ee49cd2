package main

import (
    "github.com/Subbu197328/nutri-app/config"
    "github.com/Subbu197328/nutri-app/routes"
    "github.com/Subbu197328/nutri-app/utils"
)

func main() {
    config.InitDB()
    utils.InitS3()
    r := routes.SetupRouter()
    r.Run(":8080")
}
