package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Start serves the pprof endpoints on addr in the background. Opt-in from
// config; nothing runs when it is never called.
func Start(addr string) {
	go func() {
		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		pprof.Register(router)
		if err := router.Run(addr); err != nil {
			logx.Errorf("pprof listener stopped: %v", err)
		}
	}()
}
