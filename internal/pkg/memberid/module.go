package memberid

import "go.uber.org/fx"

// Module provides identifier generation via fx.
var Module = fx.Provide(func() Generator { return NewTimeRandomGenerator() })
