package libol

import (
	"container/list"
	"fmt"
	"log"
	"runtime/debug"
	"sync"
	"time"
)

const (
	PRINT = 01
	DEBUG = 10
	FLOW  = 11
	CMD   = 15
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

const maxMessages = 1024

type Message struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
	Module  string `json:"module,omitempty"`
}

var levels = map[int]string{
	PRINT: "PRINT",
	DEBUG: "DEBUG",
	FLOW:  "FLOW",
	CMD:   "CMD",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Lock     sync.Mutex
	Messages *list.List
}

func (l *logger) Write(level int, module, format string, v ...interface{}) {
	str, ok := levels[level]
	if !ok {
		str = "NULL"
	}
	if level >= l.Level {
		if module != "" {
			log.Printf(fmt.Sprintf("%s|%s|%s", str, module, format), v...)
		} else {
			log.Printf(fmt.Sprintf("%s|%s", str, format), v...)
		}
	}
	if level >= INFO {
		l.Save(str, module, format, v...)
	}
}

func (l *logger) Save(level, module, format string, v ...interface{}) {
	m := fmt.Sprintf(format, v...)
	if l.FileLog != nil {
		l.FileLog.Printf("%s|%s|%s\n", level, module, m)
	}
	l.Lock.Lock()
	defer l.Lock.Unlock()
	if l.Messages.Len() >= maxMessages {
		if e := l.Messages.Front(); e != nil {
			l.Messages.Remove(e)
		}
	}
	l.Messages.PushBack(&Message{
		Level:   level,
		Date:    time.Now().Format(time.RFC3339),
		Message: m,
		Module:  module,
	})
}

// List returns the saved messages, newest first.
func (l *logger) List(limit int) []Message {
	l.Lock.Lock()
	defer l.Lock.Unlock()
	items := make([]Message, 0, l.Messages.Len())
	for ele := l.Messages.Back(); ele != nil; ele = ele.Prev() {
		if limit > 0 && len(items) >= limit {
			break
		}
		items = append(items, *ele.Value.(*Message))
	}
	return items
}

var Logger = &logger{
	Level:    INFO,
	Messages: list.New(),
}

func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	fp, err := OpenWrite(file)
	if err == nil {
		Logger.FileLog = log.New(fp, "", log.LstdFlags)
	} else {
		Warn("Logger.Init: %s", err)
	}
}

func SetLevel(level int) {
	Logger.Level = level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("")

func HasLog(level int) bool {
	return rLogger.Has(level)
}

func Catch(name string) {
	if err := recover(); err != nil {
		Fatal("%s|PANIC >>> %s <<<", name, err)
		Fatal("%s|STACK >>> %s <<<", name, debug.Stack())
	}
}

func Print(format string, v ...interface{}) {
	rLogger.Print(format, v...)
}

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Cmd(format string, v ...interface{}) {
	rLogger.Cmd(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	rLogger.Fatal(format, v...)
}

func (s *SubLogger) Has(level int) bool {
	return level >= s.Level
}

func (s *SubLogger) Print(format string, v ...interface{}) {
	s.logger.Write(PRINT, s.Prefix, format, v...)
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Prefix, format, v...)
}

func (s *SubLogger) Flow(format string, v ...interface{}) {
	s.logger.Write(FLOW, s.Prefix, format, v...)
}

func (s *SubLogger) Cmd(format string, v ...interface{}) {
	s.logger.Write(CMD, s.Prefix, format, v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.logger.Write(INFO, s.Prefix, format, v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Prefix, format, v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Prefix, format, v...)
}

func (s *SubLogger) Fatal(format string, v ...interface{}) {
	s.logger.Write(FATAL, s.Prefix, format, v...)
}

func init() {
	log.SetFlags(log.LstdFlags)
}
