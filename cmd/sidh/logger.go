package main

import (
	"io"
	"os"

	"github.com/jedisct1/dlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger opens fileName for appending, rotated with the limits of config.
func Logger(config *Config, fileName string) io.Writer {
	if fileName == "/dev/stdout" || fileName == "-" {
		return os.Stdout
	}
	if st, _ := os.Stat(fileName); st != nil && !st.Mode().IsRegular() {
		if st.Mode().IsDir() {
			dlog.Fatalf("[%v] is a directory", fileName)
		}
		fp, err := os.OpenFile(fileName, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			dlog.Fatalf("Unable to access [%v]: [%v]", fileName, err)
		}
		return fp
	}
	return &lumberjack.Logger{
		LocalTime:  true,
		MaxSize:    config.LogMaxSize,
		MaxAge:     config.LogMaxAge,
		MaxBackups: config.LogMaxBackups,
		Filename:   fileName,
		Compress:   true,
	}
}
