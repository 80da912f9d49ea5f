package render

type RenderOption func(*RenderState)

func Indent(n int) RenderOption {
	return func(rs *RenderState) { rs.indent = n }
}

func RenderColors(c *Colors) RenderOption {
	return func(rs *RenderState) { rs.Color = c.Color }
}
