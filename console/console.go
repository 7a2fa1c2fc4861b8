// Package console 交互式命令行: 输入起点和终点, 输出最短路线、统计信息和地图文件
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"bandung-maps/algo"
	"bandung-maps/render"

	"github.com/pkg/browser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidNode 输入的节点不在图中
	ErrInvalidNode = errors.New("节点名称无效")

	// ErrSameNode 起点和终点相同
	ErrSameNode = errors.New("起点和终点不能相同")

	// ErrNoRoute 起点和终点之间不连通
	ErrNoRoute = errors.New("起点和终点之间没有路线")
)

// Opener 打开生成的地图文件
type Opener func(path string) error

// Options 控制台运行选项
type Options struct {
	Output string // 地图文件路径
	Opener Opener // 为 nil 时不打开地图
	Map    render.MapOptions
}

// BrowserOpener 使用系统默认浏览器打开文件
func BrowserOpener(path string) error {
	return browser.OpenFile(path)
}

// NormalizeName 规范化用户输入的地名: 去掉多余空白, 每个单词首字母大写
// "  ujung   BERUNG " -> "Ujung Berung"
func NormalizeName(s string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}

// Run 运行一次交互: 列出节点, 读取起点和终点, 规划路线并生成地图
func Run(in io.Reader, out io.Writer, g *algo.Graph, opts Options) error {
	fmt.Fprintln(out, "节点列表:")
	for _, node := range g.NodeList {
		fmt.Fprintf(out, "- %s\n", node.ID)
	}

	scanner := bufio.NewScanner(in)
	start, err := prompt(scanner, out, "请输入起点名称: ")
	if err != nil {
		return err
	}
	end, err := prompt(scanner, out, "请输入终点名称: ")
	if err != nil {
		return err
	}

	// 检查起点和终点是否有效
	if !g.HasNode(start) || !g.HasNode(end) {
		fmt.Fprintln(out, "输入的节点名称无效。")
		return ErrInvalidNode
	}
	if start == end {
		fmt.Fprintln(out, "起点和终点不能相同。")
		return ErrSameNode
	}

	result, err := g.FindPath(start, end)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Fprintln(out, "起点和终点之间没有路线。")
		return ErrNoRoute
	}

	if err := render.SaveMap(opts.Output, g, result, opts.Map); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n最短路线地图已保存到 '%s'。\n\n", opts.Output)
	fmt.Fprint(out, g.FormatReport(result))

	if opts.Opener != nil {
		if err := opts.Opener(opts.Output); err != nil {
			log.Printf("打开地图失败: path=%s err=%v", opts.Output, err)
		}
	}
	return nil
}

// prompt 输出提示并读取一行, 返回规范化后的地名
func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("读取输入失败: %w", err)
		}
		return "", fmt.Errorf("读取输入失败: %w", io.ErrUnexpectedEOF)
	}
	return NormalizeName(scanner.Text()), nil
}
