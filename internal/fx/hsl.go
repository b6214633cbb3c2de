package fx

import "fraglens/internal/surface"

// rgbToHSL converts to hue [0,360), saturation [0,1], lightness [0,1].
func rgbToHSL(c surface.RGB) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max, min := r, r
	for _, v := range []float64{g, b} {
		if v > max {
			max = v
		}
		if v < min {
			min = v
		}
	}
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}

func hslToRGB(h, s, l float64) surface.RGB {
	if s == 0 {
		v := uint8(l*255 + 0.5)
		return surface.RGB{R: v, G: v, B: v}
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	conv := func(t float64) uint8 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		var v float64
		switch {
		case t < 1.0/6:
			v = p + (q-p)*6*t
		case t < 1.0/2:
			v = q
		case t < 2.0/3:
			v = p + (q-p)*(2.0/3-t)*6
		default:
			v = p
		}
		return uint8(v*255 + 0.5)
	}
	return surface.RGB{R: conv(hk + 1.0/3), G: conv(hk), B: conv(hk - 1.0/3)}
}
