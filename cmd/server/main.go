package main

import (
	"flag"
	"fmt"

	"boxline/internal/config"
	"boxline/internal/handler"
	"boxline/internal/svc"
	"boxline/pkg/pprof"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
)

var configFile = flag.String("f", "etc/boxline.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	if c.PprofAddr != "" {
		pprof.Start(c.PprofAddr)
	}

	svcCtx := svc.NewServiceContext(c)
	defer svcCtx.Shutdown()

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	handler.RegisterHandlers(server, svcCtx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
