package svgpath

import "math"

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// kappa is the control point distance, relative to the radius,
// for a quarter circle approximated by a cubic bezier.
const kappa = 0.5522847498307936 // 4 * (sqrt(2) - 1) / 3

// AddRect adds a closed rectangle with origin (x, y).
func AddRect(q Adder, x, y, w, h float64) {
	q.MoveTo(Point{x, y})
	q.LineTo(Point{x + w, y})
	q.LineTo(Point{x + w, y + h})
	q.LineTo(Point{x, y + h})
	q.ClosePath()
}

// AddRoundRect adds a rectangle with rounded corners of radius
// rx in the x axis and ry in the y axis. Radii are clamped to
// half the side lengths, and a zero radius falls back to AddRect.
func AddRoundRect(q Adder, x, y, w, h, rx, ry float64) {
	rx, ry = math.Min(math.Abs(rx), w/2), math.Min(math.Abs(ry), h/2)
	if rx <= 0 || ry <= 0 {
		AddRect(q, x, y, w, h)
		return
	}
	kx, ky := kappa*rx, kappa*ry
	maxX, maxY := x+w, y+h

	q.MoveTo(Point{x + rx, y})
	q.LineTo(Point{maxX - rx, y})
	q.CurveTo(Point{maxX, y + ry}, Point{maxX - rx + kx, y}, Point{maxX, y + ry - ky})
	q.LineTo(Point{maxX, maxY - ry})
	q.CurveTo(Point{maxX - rx, maxY}, Point{maxX, maxY - ry + ky}, Point{maxX - rx + kx, maxY})
	q.LineTo(Point{x + rx, maxY})
	q.CurveTo(Point{x, maxY - ry}, Point{x + rx - kx, maxY}, Point{x, maxY - ry + ky})
	q.LineTo(Point{x, y + ry})
	q.CurveTo(Point{x + rx, y}, Point{x, y + ry - ky}, Point{x + rx - kx, y})
	q.ClosePath()
}

// AddEllipse adds a closed, axis aligned ellipse made of
// four cubic curves, starting at the rightmost point.
func AddEllipse(q Adder, c Point, rx, ry float64) {
	kx, ky := kappa*rx, kappa*ry
	q.MoveTo(Point{c.X + rx, c.Y})
	q.CurveTo(Point{c.X, c.Y + ry}, Point{c.X + rx, c.Y + ky}, Point{c.X + kx, c.Y + ry})
	q.CurveTo(Point{c.X - rx, c.Y}, Point{c.X - kx, c.Y + ry}, Point{c.X - rx, c.Y + ky})
	q.CurveTo(Point{c.X, c.Y - ry}, Point{c.X - rx, c.Y - ky}, Point{c.X - kx, c.Y - ry})
	q.CurveTo(Point{c.X + rx, c.Y}, Point{c.X + kx, c.Y - ry}, Point{c.X + rx, c.Y - ky})
	q.ClosePath()
}

// addArc approximates `arc`, starting at `from`, with cubic curves sent to `q`.
// A zero radius degenerates to a line, and an arc ending
// at its start point is omitted.
func addArc(q Adder, from Point, arc EllipticalArc) {
	if from == arc.To {
		return
	}
	ra, rb := math.Abs(arc.Radius.X), math.Abs(arc.Radius.Y)
	if ra == 0 || rb == 0 {
		q.LineTo(arc.To)
		return
	}
	rotX := arc.Rotation * math.Pi / 180 // Convert degress to radians
	cx, cy := findEllipseCenter(&ra, &rb, rotX, from.X, from.Y, arc.To.X, arc.To.Y, arc.Sweep, !arc.LargeArc)

	startAngle := math.Atan2(from.Y-cy, from.X-cx) - rotX
	endAngle := math.Atan2(arc.To.Y-cy, arc.To.X-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezeir splines
	etaStart := math.Atan2(math.Sin(startAngle)/rb, math.Cos(startAngle)/ra)
	etaEnd := math.Atan2(math.Sin(endAngle)/rb, math.Cos(endAngle)/ra)
	deltaEta := etaEnd - etaStart
	if arcBig != arc.LargeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && arc.Sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !arc.Sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := from.X, from.Y
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(ra, rb, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = arc.To.X, arc.To.Y // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(ra, rb, sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(ra, rb, sinTheta, cosTheta, eta)
		q.CurveTo(Point{px, py}, Point{lx + alpha*ldx, ly + alpha*ldy}, Point{px - alpha*dx, py - alpha*dy})
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio. ra and rb arguments are pointers that can be
// checked after the call to see if the values changed. This method uses coordinate transformations
// to reduce the problem to finding the center of a circle that includes the origin
// and an arbitrary point. The center of the circle is then transformed
// back to the original coordinates and returned.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit. Length of
		// span is greater than max width of ellipse, must scale *ra, *rb
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
