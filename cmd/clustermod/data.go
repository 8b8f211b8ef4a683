package main

import "github.com/carbocation/astromisc/measurement"

// Cluster photometry: apparent B and V magnitudes, index-aligned (1-based
// star numbers; star i has magnitude clusterB[i-1] and clusterV[i-1]).
var (
	clusterB = []float64{
		6.17, 6.80, 7.17, 7.76, 8.26,
		8.75, 9.19, 9.58, 10.00, 10.50,
		10.93, 11.45, 11.90, 8.15, 12.80,
		8.07, 8.00, 12.36, 12.82, 13.34,
	}
	clusterV = []float64{
		6.15, 6.72, 7.05, 7.58, 8.02,
		8.45, 8.83, 9.16, 9.52, 9.95,
		10.31, 10.75, 11.12, 7.20, 12.40,
		7.05, 6.90, 11.50, 11.88, 12.30,
	}
)

// Stars flagged by hand after inspecting the color-magnitude diagram.
// Star 15 sits well below the sequence (likely a background star); stars
// 14, 16 and 17 are on the giant branch and do not belong in a
// main-sequence fit.
var (
	photometricOutliers = measurement.NewIndexSet(15)
	giantBranchStars    = measurement.NewIndexSet(14, 16, 17)

	excludedFromFit = photometricOutliers.Union(giantBranchStars)
)

// Calibration main sequence: B-V color against absolute visual magnitude.
var (
	calibrationColor = []float64{
		0.00, 0.10, 0.20, 0.30, 0.40, 0.50, 0.60,
		0.70, 0.80, 0.90, 1.00, 1.10, 1.20,
	}
	calibrationAbsMag = []float64{
		0.58, 1.30, 2.00, 2.68, 3.32, 3.98, 4.60,
		5.25, 5.88, 6.48, 7.05, 7.62, 8.15,
	}
)
