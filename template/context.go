package template

type (
	// TemplateContext carries the variables and functions visible to config templates.
	TemplateContext struct {
		variables map[string]interface{}
		funcs     map[string]interface{}
	}
)

func NewTemplateContext() *TemplateContext {
	return &TemplateContext{make(map[string]interface{}), make(map[string]interface{})}
}

func (c *TemplateContext) Set(key string, value interface{}) {
	c.variables[key] = value
}

func (c *TemplateContext) AddFuncs(funcs map[string]interface{}) {
	for k, v := range funcs {
		if _, exist := c.funcs[k]; exist {
			panic("already exist: " + k)
		}
		c.funcs[k] = v
	}
}
