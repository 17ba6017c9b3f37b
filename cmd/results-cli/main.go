package main

import (
	"tallyroom-backend/cmd/results-cli/commands"
	"tallyroom-backend/lib/serviceutil"
	"tallyroom-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()
	telemetry.SetupFromEnv(ctx, "results-cli")
	telemetry.InstrumentPerfStats(ctx)
	commands.ExecuteContext(ctx)
}
