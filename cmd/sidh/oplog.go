package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Operation is one keygen, pubkey or agree invocation.
type Operation struct {
	Command string
	Params  string
	Variant string
	KeyName string
	Err     error
}

type OperationLog struct {
	sync.Mutex
	out    io.Writer
	format string
	now    func() time.Time
}

func NewOperationLog(out io.Writer, format string) (*OperationLog, error) {
	if format != "tsv" && format != "ltsv" {
		return nil, fmt.Errorf("Unexpected log format: [%s]", format)
	}
	return &OperationLog{out: out, format: format, now: time.Now}, nil
}

// OpenOperationLog returns nil when no operation log is configured.
func OpenOperationLog(config *Config) (*OperationLog, error) {
	if len(config.OperationLog.File) == 0 {
		return nil, nil
	}
	out := Logger(config, config.OperationLog.File)
	return NewOperationLog(out, config.OperationLog.Format)
}

func StringQuote(str string) string {
	str = strconv.QuoteToGraphic(str)
	return str[1 : len(str)-1]
}

// Record appends op to the log. A nil log discards it.
func (oplog *OperationLog) Record(op Operation) error {
	if oplog == nil {
		return nil
	}
	status := "ok"
	if op.Err != nil {
		status = StringQuote(op.Err.Error())
	}
	now := oplog.now()

	var line string
	if oplog.format == "tsv" {
		year, month, day := now.Date()
		hour, minute, second := now.Clock()
		tsStr := fmt.Sprintf("[%d-%02d-%02d %02d:%02d:%02d]", year, int(month), day, hour, minute, second)
		line = fmt.Sprintf("%s\t%s\t%s\t%s\t%s\t%s\n", tsStr, op.Command, op.Params, op.Variant, StringQuote(op.KeyName), status)
	} else {
		line = fmt.Sprintf("time:%d\tcommand:%s\tparams:%s\tvariant:%s\tkey:%s\tstatus:%s\n",
			now.Unix(), op.Command, op.Params, op.Variant, StringQuote(op.KeyName), status)
	}
	oplog.Lock()
	defer oplog.Unlock()
	if _, err := io.WriteString(oplog.out, line); err != nil {
		return errors.Wrap(err, "Unable to write to the operation log")
	}
	return nil
}

func (oplog *OperationLog) Close() error {
	if oplog == nil {
		return nil
	}
	if closer, ok := oplog.out.(io.Closer); ok && oplog.out != io.Writer(os.Stdout) {
		return closer.Close()
	}
	return nil
}
