package geom

type Circle struct {
	Center Vector  `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

func (c Circle) ContainsPoint(p Vector) bool {
	return p.Sub(c.Center).SqrMagnitude() <= c.Radius*c.Radius
}
