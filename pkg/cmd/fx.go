package cmd

import "go.uber.org/fx"

var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(buildCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(dev, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(initCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(listCmd, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(newCmd, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
