package domain

import "context"

// ServicePort defines the service contract for conversions
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectOutput, error)
	Suggest(ctx context.Context, in SuggestInput) (SuggestOutput, error)
	Run(ctx context.Context, in RunInput) (RunOutput, error)
	Codec(ctx context.Context, in CodecInput) (CodecOutput, error)
	Languages(ctx context.Context) (LanguagesOutput, error)
}
