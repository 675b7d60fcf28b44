package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{entry: logrus.NewEntry(logrus.StandardLogger()), errOut: os.Stderr}

// Logger is safe for concurrent use; the level watcher logs from its own goroutine.
type Logger struct {
	mu      sync.RWMutex
	entry   *logrus.Entry
	console bool
	// errOut receives the Fatal diagnostic whatever the console setting.
	errOut io.Writer
	config *viper.Viper
}

type properties struct {
	logFilename string
	maxSize     int
	maxBackups  int
	maxAge      int
	compress    bool
	console     bool
	level       string
}

func readLoggerProperties(path string) (*viper.Viper, properties, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("properties")
	v.SetDefault("logFilename", "pong.log")
	v.SetDefault("maxSize", 10)
	v.SetDefault("maxBackups", 3)
	v.SetDefault("maxAge", 28)
	v.SetDefault("level", "Info")

	if err := v.ReadInConfig(); err != nil {
		return nil, properties{}, fmt.Errorf("read logger config %s: %w", path, err)
	}

	return v, properties{
		logFilename: cast.ToString(v.Get("logFilename")),
		maxSize:     cast.ToInt(v.Get("maxSize")),
		maxBackups:  cast.ToInt(v.Get("maxBackups")),
		maxAge:      cast.ToInt(v.Get("maxAge")),
		compress:    cast.ToBool(v.Get("compress")),
		console:     cast.ToBool(v.Get("console")),
		level:       cast.ToString(v.Get("level")),
	}, nil
}

// Init points the standard logrus logger at a rotating JSON log file
// configured by the properties file at path.
func (l *Logger) Init(path string) error {
	v, p, err := readLoggerProperties(path)
	if err != nil {
		return err
	}

	loggerConfig := &lumberjack.Logger{
		Filename:   p.logFilename,
		MaxSize:    p.maxSize,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		Compress:   p.compress,
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)
	logrus.SetLevel(parseLevel(p.level))

	l.mu.Lock()
	l.config = v
	l.console = p.console
	l.entry = logrus.NewEntry(logrus.StandardLogger())
	l.mu.Unlock()
	return nil
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {

	case "trace":
		return logrus.TraceLevel

	case "info":
		return logrus.InfoLevel

	case "warn":
		return logrus.WarnLevel

	case "error":
		return logrus.ErrorLevel

	case "fatal":
		return logrus.FatalLevel

	default:
		return logrus.DebugLevel
	}
}

// SetConsole turns the stdout echo on or off. The terminal client turns it
// off while it owns the screen.
func (l *Logger) SetConsole(enabled bool) {
	l.mu.Lock()
	l.console = enabled
	l.mu.Unlock()
}

// SetMatch tags every following entry with the match id.
func (l *Logger) SetMatch(id string) {
	l.mu.Lock()
	l.entry = logrus.WithField("match", id)
	l.mu.Unlock()
}

// WatchLevel re-applies the level whenever the properties file changes.
// Init must have been called first.
func (l *Logger) WatchLevel() {
	l.mu.RLock()
	v := l.config
	l.mu.RUnlock()
	if v == nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		level := cast.ToString(v.Get("level"))
		logrus.SetLevel(parseLevel(level))
		l.Info(fmt.Sprintf(LogLevelReloadMsg, logrus.GetLevel()))
	})
	v.WatchConfig()
}

func (l *Logger) current() (*logrus.Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entry, l.console
}

func (l *Logger) Info(message string) {
	entry, console := l.current()
	entry.Info(message)
	echo(entry, console, logrus.InfoLevel, "Info:", message)
}

func (l *Logger) Error(message string) {
	entry, console := l.current()
	entry.Error(message)
	echo(entry, console, logrus.ErrorLevel, "Error:", message)
}

func (l *Logger) Debug(message string) {
	entry, console := l.current()
	entry.Debug(message)
	echo(entry, console, logrus.DebugLevel, "Debug:", message)
}

func (l *Logger) Warn(message string) {
	entry, console := l.current()
	entry.Warn(message)
	echo(entry, console, logrus.WarnLevel, "Warn:", message)
}

// Fatal always writes the message to errOut, so the process never exits
// silently while the log file is the only other output.
func (l *Logger) Fatal(message string) {
	entry, _ := l.current()
	l.mu.RLock()
	errOut := l.errOut
	l.mu.RUnlock()
	if errOut == nil {
		errOut = os.Stderr
	}
	fmt.Fprintln(errOut, "Fatal:", message)
	entry.Fatal(message)
}

func echo(entry *logrus.Entry, console bool, level logrus.Level, prefix, message string) {
	if console && entry.Logger.IsLevelEnabled(level) {
		fmt.Println(prefix, message)
	}
}
