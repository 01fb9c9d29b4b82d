// Package prediction derives remaining-useful-life estimates from vehicle
// sensor readings. The shipped engine is a thresholded placeholder for a
// real model: it flags out-of-range sensors and draws the RUL from a
// critical or healthy range. Engines are injectable so deterministic
// doubles can replace the randomized draw in tests.
package prediction
