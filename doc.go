/*
Package supershape evaluates the superformula, a generalization of the
superellipse published by Johan Gielis.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.

The superformula defines a polar radius as a function of the angle φ:

	r(φ) = ( |cos(mφ/4)/a|^n2 + |sin(mφ/4)/b|^n3 ) ^ (-1/n1)

with a = b = 1. Parameter m controls the rotational symmetry, n1, n2 and n3
control the convexity of the resulting shape. Well-known settings are

	m=4, n1=n2=n3=2    a unit circle
	m=4, n1=n2=n3=1    a square standing on its tip (|x|+|y| = 1)
	m=5, n1=n2=n3=0.3  a five-pointed star

The package computes exactly one point per call. Clients sampling a whole
outline loop over φ themselves:

	for i := 0; i < n; i++ {
	    phi := float64(i) * 2 * math.Pi / float64(n)
	    x, y := supershape.Supercalc(5, 0.3, 0.3, 0.3, phi)
	    ...
	}

Supercalc does no validation. Degenerate parameters lead to NaN or ±Inf
coordinates following IEEE-754 rules. Clients wanting to reject such input
up front may call Params.Validate.
*/
package supershape
