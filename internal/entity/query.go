package entity

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

// ListParams 描述 skip/limit 风格的分页参数。
type ListParams struct {
	Skip  int
	Limit int
}

// Normalize 将越界的分页参数收敛到合法范围，而不是报错。
// maxLimit <= 0 时使用 MaxPageLimit。
func (p ListParams) Normalize(maxLimit int) ListParams {
	if maxLimit <= 0 {
		maxLimit = MaxPageLimit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}
