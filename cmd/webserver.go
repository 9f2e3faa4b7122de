package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/fprim/pkg/envs"
	"github.com/narasux/fprim/pkg/logging"
	"github.com/narasux/fprim/pkg/router"
	"github.com/narasux/fprim/pkg/storage"
)

func newWebServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webserver",
		Short: "webserver start http server providing scattering factor apis.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.InitLogger(); err != nil {
				return err
			}
			// 启动前初始化计算器，数据集有误时直接退出
			if _, err := storage.ScatteringProvider(); err != nil {
				return err
			}
			color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
			return router.Run(":" + envs.ServerPort)
		},
	}
}
