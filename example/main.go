package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/xgzlucario/sortedlist"
	"github.com/xgzlucario/sortedlist/option"
	"github.com/xgzlucario/sortedlist/policy"
)

const config = `
capacity: 4
arena_size: 65536
`

func main() {
	opt, err := option.Parse([]byte(config))
	if err != nil {
		panic(err)
	}
	opt.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l, err := sortedlist.NewWithOption(policy.Strings(), opt)
	if err != nil {
		panic(err)
	}
	defer l.Release()

	for i := 0; i < 20; i++ {
		k := "key" + strconv.Itoa((i*7)%20)
		if err := l.Insert(k); err != nil {
			panic(err)
		}
	}

	lo, _ := l.Min()
	hi, _ := l.Max()
	fmt.Println("min:", lo, "max:", hi)
	fmt.Println("key13 at:", l.IndexOf("key13", true))

	for it := l.IterEnd(); ; {
		fmt.Println(it.Index(), it.Value())
		if !it.Prev() {
			break
		}
	}

	l.Print(os.Stdout, "[", " ", "]\n")
	fmt.Println(l)
}
