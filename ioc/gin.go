// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/feedsync/config"
	"github.com/ecodeclub/feedsync/internal/article"
	"github.com/ecodeclub/feedsync/internal/comment"
	"github.com/ecodeclub/feedsync/internal/identity"
	"github.com/ecodeclub/feedsync/internal/pkg/ectx"
	"github.com/ecodeclub/feedsync/internal/pkg/middleware"
	"github.com/ecodeclub/feedsync/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	idtHdl *identity.Handler,
	artHdl *article.Handler,
	cmtHdl *comment.Handler,
) *egin.Component {
	var cfg config.CorsConfig
	err := econf.UnmarshalKey("cors", &cfg)
	if err != nil {
		panic(err)
	}
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", ectx.RequestIDHeader},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type", ectx.RequestIDHeader},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, domain := range cfg.AllowedDomains {
				if strings.Contains(origin, domain) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewRequestIDBuilder(sequencenumber.NewGenerator()).Build())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	idtHdl.PrivateRoutes(res.Engine)
	artHdl.PrivateRoutes(res.Engine)
	cmtHdl.PrivateRoutes(res.Engine)
	return res
}
