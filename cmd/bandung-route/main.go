// bandung-route 在终端中查询两地之间的最短路线, 并生成 HTML 地图
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bandung-maps/algo"
	"bandung-maps/config"
	"bandung-maps/console"
	"bandung-maps/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("读取配置失败: %v", err)
	}

	out := flag.String("out", cfg.MapOutput, "生成的地图文件")
	noBrowser := flag.Bool("no-browser", false, "不自动打开浏览器")
	dataPath := flag.String("data", "", "地图数据 JSON 文件 (默认使用 DATA_SOURCE 配置)")
	flag.Parse()

	if *dataPath != "" {
		cfg.DataSource = config.SourceJSON
		cfg.MapDataPath = *dataPath
	}

	graph, err := algo.Load(cfg)
	if err != nil {
		log.Fatalf("加载地图失败: %v", err)
	}

	opts := console.Options{
		Output: *out,
		Opener: console.BrowserOpener,
		Map:    render.DefaultOptions(graph),
	}
	if *noBrowser {
		opts.Opener = nil
	}

	if err := console.Run(os.Stdin, os.Stdout, graph, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
