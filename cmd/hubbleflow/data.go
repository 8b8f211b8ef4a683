package main

// galaxy is one spectroscopic target: its apparent magnitude and the
// observed wavelengths of the Ca II K and H absorption lines, in Angstroms.
// LambdaH is zero when the H line could not be measured on the plate.
type galaxy struct {
	Name     string
	Apparent float64
	LambdaK  float64
	LambdaH  float64
}

// assumedAbsoluteMagnitude is the absolute magnitude assumed for every
// galaxy in the sample when converting apparent magnitude to distance.
const assumedAbsoluteMagnitude = -22.0

var galaxies = []galaxy{
	{"NGC 1357", 9.2, 3950.075, 3983.904},
	{"NGC 1832", 10.1, 3958.236, 3992.192},
	{"NGC 2276", 10.8, 3966.071, 4000.092},
	{"NGC 2775", 11.6, 3984.156, 4018.780},
	{"NGC 3147", 12.0, 3988.983, 4022.892},
	{"NGC 3368", 12.7, 4009.308, 4043.214},
	{"NGC 3627", 13.2, 4037.130, 0},
	{"NGC 4775", 13.8, 4057.951, 0},
	{"NGC 5248", 14.5, 4109.368, 0},
	{"NGC 6181", 15.1, 4174.525, 4210.467},
}
