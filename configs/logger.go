package configs

import "go.uber.org/zap"

// Log is the process-wide logger. InitLogger must run before anything uses it;
// until then it is a nop so tests stay quiet.
var Log = zap.NewNop()

func InitLogger(env string) {
	var err error
	if env == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}
