package template

type (
	// TemplateField is a config value that may reference the environment,
	// e.g. token: '{{ Env "SANITY_TOKEN" }}'.
	TemplateField struct {
		template string
		defined  bool
	}
)

func NewTemplateField(template string) TemplateField {
	return TemplateField{template, true}
}

func (t TemplateField) MustEvaluate(ctx *TemplateContext) string {
	if result, err := t.Evaluate(ctx); err == nil {
		return result
	} else {
		panic(err)
	}
}

// Evaluate renders the field. An undefined field evaluates to "".
func (t TemplateField) Evaluate(ctx *TemplateContext) (string, error) {
	if !t.defined {
		return "", nil
	}
	return evaluate(t.template, ctx)
}

// EvaluateOr renders the field, falling back to def when it is undefined or renders empty.
func (t TemplateField) EvaluateOr(ctx *TemplateContext, def string) (string, error) {
	s, err := t.Evaluate(ctx)
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

func (t TemplateField) IsDefined() bool {
	return t.defined
}

func (t TemplateField) String() string {
	return t.template
}

func (t *TemplateField) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var template string
	if err := unmarshal(&template); err != nil {
		return err
	}
	t.template = template
	t.defined = true
	return nil
}
