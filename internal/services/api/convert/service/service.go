// Package service runs the converter core behind sanitation, quota, history and events
package service

import (
	"context"
	"fmt"
	"time"

	"langshift/internal/core/codec"
	"langshift/internal/core/normalize"
	"langshift/internal/core/planner"
	"langshift/internal/core/shift"
	perr "langshift/internal/platform/errors"
	"langshift/internal/platform/logger"
	"langshift/internal/services/api/convert/domain"
	evdom "langshift/internal/services/events/domain"
	histdom "langshift/internal/services/history/domain"
	quotadom "langshift/internal/services/quota/domain"
)

// maxAlternatives caps the ranked alternatives returned by Detect
const maxAlternatives = 5

// Service defines the service contract for conversions
type Service interface{ domain.ServicePort }

// Options wires the optional collaborators; nil ones are skipped
type Options struct {
	Sanitizer *normalize.Sanitizer
	History   histdom.RecorderPort
	Events    evdom.EmitterPort
	Limiter   quotadom.LimiterPort
}

// Svc implements Service
type Svc struct {
	core *shift.Shift
	san  *normalize.Sanitizer
	hist histdom.RecorderPort
	ev   evdom.EmitterPort
	lim  quotadom.LimiterPort
	now  func() time.Time
}

var _ Service = (*Svc)(nil)

// New creates a conversion service over core
func New(core *shift.Shift, opts Options) *Svc {
	if core == nil {
		panic("convert.Service requires a non nil core")
	}
	san := opts.Sanitizer
	if san == nil {
		san = normalize.New()
	}
	return &Svc{
		core: core,
		san:  san,
		hist: opts.History,
		ev:   opts.Events,
		lim:  opts.Limiter,
		now:  time.Now,
	}
}

// Detect classifies the text and returns the ranked alternatives
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	text, err := s.clean(ctx, "", in.Text)
	if err != nil {
		return domain.DetectOutput{}, err
	}

	out := domain.DetectOutput{Alternatives: []domain.Alternative{}}
	cat := s.core.Catalog()
	for i, sc := range s.core.Rank(text) {
		if i == 0 {
			out.Detected = true
			out.Language = sc.Tag
			out.Name = cat.Display(sc.Tag)
			out.Icon = cat.Icon(sc.Tag)
			continue
		}
		if len(out.Alternatives) == maxAlternatives {
			break
		}
		out.Alternatives = append(out.Alternatives, domain.Alternative{
			Language: sc.Tag,
			Name:     cat.Display(sc.Tag),
			Score:    sc.Count,
		})
	}

	if out.Detected {
		s.emit(ctx, evdom.Event{
			Kind:      evdom.LanguageDetected,
			From:      out.Language,
			InputSize: len(text),
			Success:   true,
		})
	}
	return out, nil
}

// Suggest plans conversions for in.Language, detecting it when empty
func (s *Svc) Suggest(ctx context.Context, in domain.SuggestInput) (domain.SuggestOutput, error) {
	text, err := s.clean(ctx, "", in.Text)
	if err != nil {
		return domain.SuggestOutput{}, err
	}
	lang := in.Language
	if lang == "" {
		lang, _ = s.core.Detect(text)
	} else if err := normalize.ValidateTag("language", lang); err != nil {
		return domain.SuggestOutput{}, err
	}

	plan := s.core.Suggest(lang, text)
	out := domain.SuggestOutput{Language: lang, Suggestions: make([]domain.Suggestion, 0, len(plan))}
	for _, sg := range plan {
		out.Suggestions = append(out.Suggestions, toDTO(sg))
	}
	return out, nil
}

// Run converts in.Text from in.From to in.To
func (s *Svc) Run(ctx context.Context, in domain.RunInput) (domain.RunOutput, error) {
	if err := normalize.ValidateTag("from", in.From); err != nil {
		return domain.RunOutput{}, err
	}
	if err := normalize.ValidateTag("to", in.To); err != nil {
		return domain.RunOutput{}, err
	}

	remaining := -1
	if s.lim != nil {
		d, err := s.lim.Check(limiterKey(in))
		if err != nil {
			s.emit(ctx, evdom.Event{
				Kind:    evdom.ErrorOccurred,
				Session: in.Session,
				From:    in.From,
				To:      in.To,
				Message: err.Error(),
			})
			return domain.RunOutput{}, err
		}
		remaining = d.Remaining
	}

	text, err := s.clean(ctx, in.Session, in.Text)
	if err != nil {
		return domain.RunOutput{}, err
	}

	sg := s.suggestionFor(in.From, in.To, text)
	start := s.now()
	res, err := s.core.Convert(text, sg)
	took := s.now().Sub(start).Milliseconds()
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("from", in.From).Str("to", in.To).Msg("conversion failed")
		s.emit(ctx, evdom.Event{
			Kind:       evdom.ConversionFailed,
			Session:    in.Session,
			From:       in.From,
			To:         in.To,
			InputSize:  len(text),
			DurationMs: took,
			Message:    err.Error(),
		})
		return domain.RunOutput{}, err
	}

	if s.hist != nil && in.Session != "" {
		if _, herr := s.hist.Record(ctx, histdom.RecordInput{
			Session: in.Session,
			Label:   sg.Name,
			Source:  text,
			Result:  res.Text,
		}); herr != nil {
			logger.C(ctx).Warn().Err(herr).Msg("history record failed")
		}
	}

	s.emit(ctx, evdom.Event{
		Kind:       evdom.ConversionCompleted,
		Session:    in.Session,
		From:       in.From,
		To:         in.To,
		InputSize:  len(text),
		DurationMs: took,
		Success:    true,
		Message:    string(res.Kind),
	})

	return domain.RunOutput{
		Output:     res.Text,
		Kind:       string(res.Kind),
		Suggestion: toDTO(sg),
		DurationMs: took,
		Remaining:  remaining,
	}, nil
}

// Codec converts between structured formats directly
func (s *Svc) Codec(ctx context.Context, in domain.CodecInput) (domain.CodecOutput, error) {
	for _, f := range [...]struct{ field, tag string }{{"from", in.From}, {"to", in.To}} {
		if !codec.Supports(f.tag) {
			return domain.CodecOutput{}, perr.WithField(
				perr.Validationf("unsupported structured format %q", f.tag), f.field)
		}
	}
	text, err := s.clean(ctx, "", in.Text)
	if err != nil {
		return domain.CodecOutput{}, err
	}

	start := s.now()
	v, err := s.core.Decode(text, in.From)
	if err != nil {
		return domain.CodecOutput{}, err
	}
	out, err := s.core.Encode(v, in.To)
	if err != nil {
		return domain.CodecOutput{}, err
	}
	return domain.CodecOutput{Output: out, DurationMs: s.now().Sub(start).Milliseconds()}, nil
}

// Languages lists the catalog and the pairs with dedicated handling
func (s *Svc) Languages(_ context.Context) (domain.LanguagesOutput, error) {
	cat := s.core.Catalog()
	out := domain.LanguagesOutput{
		Version:   cat.Version,
		Languages: make([]domain.Language, 0, len(cat.Languages)),
	}
	for _, l := range cat.Languages {
		out.Languages = append(out.Languages, domain.Language{
			Tag:      l.Tag,
			Name:     l.Name,
			Icon:     l.Icon,
			Category: string(l.Category),
			Targets:  l.Targets,
		})
	}
	pairs := s.core.Pairs()
	out.Pairs = make([]domain.Pair, 0, len(pairs))
	for _, p := range pairs {
		out.Pairs = append(out.Pairs, domain.Pair{
			From: p.From,
			To:   p.To,
			Kind: string(s.core.KindOf(p.From, p.To)),
		})
	}
	return out, nil
}

func (s *Svc) clean(ctx context.Context, session, text string) (string, error) {
	out, err := s.san.Clean(text)
	if err != nil {
		s.emit(ctx, evdom.Event{
			Kind:      evdom.ErrorOccurred,
			Session:   session,
			InputSize: len(text),
			Message:   err.Error(),
		})
		return "", err
	}
	return out, nil
}

// suggestionFor reuses the planner's suggestion when it offers the pair
func (s *Svc) suggestionFor(from, to, text string) planner.Suggestion {
	for _, sg := range s.core.Suggest(from, text) {
		if sg.Target == to {
			return sg
		}
	}
	cat := s.core.Catalog()
	return planner.Suggestion{
		ID:          from + "-" + to,
		Name:        "Convert to " + cat.Display(to),
		Description: fmt.Sprintf("Transform %s code to %s", cat.Display(from), cat.Display(to)),
		Icon:        cat.Icon(to),
		Source:      from,
		Target:      to,
	}
}

func (s *Svc) emit(ctx context.Context, e evdom.Event) {
	if s.ev != nil {
		s.ev.Emit(ctx, e)
	}
}

func limiterKey(in domain.RunInput) string {
	if in.Session != "" {
		return "session:" + in.Session
	}
	if in.Client != "" {
		return "client:" + in.Client
	}
	return "anonymous"
}

func toDTO(sg planner.Suggestion) domain.Suggestion {
	return domain.Suggestion{
		ID:          sg.ID,
		Name:        sg.Name,
		Description: sg.Description,
		Icon:        sg.Icon,
		From:        sg.Source,
		To:          sg.Target,
	}
}

