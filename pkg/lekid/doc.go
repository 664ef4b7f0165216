// Package lekid holds closed-form relations for Lumped-Element Kinetic
// Inductance Detectors: Mattis-Bardeen conductivity ratios, surface
// resistance, resonator reactances and geometric inductance extraction.
//
// All formula functions take and return SI values and perform no input
// checking. Degenerate inputs (zero widths, equal frequencies, negative
// radicands) yield Inf or NaN exactly as the arithmetic does. The Check*
// functions and NewDesign provide an explicit checked layer on top.
package lekid
