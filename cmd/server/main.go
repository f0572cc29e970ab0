package main

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jdalisay/platebook/store"
	"github.com/jdalisay/platebook/utils"
	"github.com/jdalisay/platebook/utils/dotenv"
	. "github.com/jdalisay/platebook/utils/log"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		Log.Fatal("fail to connect to database: ", err)
	}
	if err := utils.DatabaseSetupAndMigration(db); err != nil {
		Log.Fatal("fail to migrate database: ", err)
	}

	var st *store.Store
	if os.Getenv("REDIS_HOST") != "" {
		st = store.NewWithCache(db, utils.GetRedisClient())
	} else {
		st = store.New(db)
	}

	// Default With the Logger and Recovery middleware already attached
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Debug route for eyeballing the materialized ranking; the real read
	// surface lives in the web layer that links against the store.
	router.GET("/top", func(c *gin.Context) {
		n, err := strconv.Atoi(c.DefaultQuery("n", "10"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be an integer"})
			return
		}
		views, err := st.TopRestaurants(n)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, views)
	})

	Log.Info("api server starts up")
	router.Run(":8080")
}
