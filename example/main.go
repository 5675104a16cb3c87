package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hlandau/xlog"
	"github.com/mgnsk/queue"
	flag "github.com/ogier/pflag"
)

var log, Log = xlog.New("example")

var (
	descendFlag = flag.BoolP("descend", "d", false, "sort in descending order")
	blockFlag   = flag.IntP("block", "k", 2, "block size for the block reverse")
)

func main() {
	flag.Parse()

	q := queue.New()
	defer q.Free()

	for _, word := range flag.Args() {
		if err := q.InsertTail(word); err != nil {
			log.Fatale(err, "inserting ", word)
		}
	}

	show := func(op string) {
		fmt.Printf("%-10s [%s]\n", op, strings.Join(q.Values(), " "))
	}

	show("input")

	q.ReverseK(*blockFlag)
	show("reverseK")

	q.Sort(*descendFlag)
	show("sort")

	if err := q.DeleteDup(); err == nil {
		show("dedup")
	}

	// The caller owns removed elements.
	buf := make([]byte, 8)
	if e, err := q.RemoveHead(buf); err == nil {
		fmt.Printf("%-10s %q\n", "removed", buf[:bytes.IndexByte(buf, 0)])
		e.Release()
	}

	show("output")
}
