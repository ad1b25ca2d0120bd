/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-08-25 00:21:55
 * @LastEditTime: 2025-10-12 12:19:06
 * @LastEditors: 安知鱼
 */
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/anzhiyu-c/user-tags/cmd/server"
)

// @title           User Tags API
// @version         1.0
// @description     按用户隔离的对象标签服务接口文档

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8092
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 在请求头中添加 Bearer Token，格式为: Bearer {token}
func main() {
	app, cleanup, err := server.NewApp()
	if err != nil {
		if cleanup != nil {
			cleanup()
		}
		log.Fatalf("应用初始化失败: %v", err)
	}
	defer cleanup()

	app.PrintBanner()

	// 监听退出信号，优雅停止定时任务
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("收到退出信号，开始关闭...")
		app.Stop()
		cleanup()
		os.Exit(0)
	}()

	if err := app.Run(); err != nil {
		log.Fatalf("应用运行失败: %v", err)
	}
}
