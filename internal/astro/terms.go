package astro

// periodicTerm is one term of the solar longitude series:
// amplitude * sin(phase + frequency * centuries).
type periodicTerm struct {
	amplitude float64
	phase     float64 // degrees
	frequency float64 // degrees per Julian century
}

// solarLongitudeTerms are the 49 periodic terms of the apparent solar
// longitude from Bretagnon and Simon, as tabulated by Reingold and Dershowitz.
var solarLongitudeTerms = [...]periodicTerm{
	{403406, 270.54861, 0.9287892},
	{195207, 340.19128, 35999.1376958},
	{119433, 63.91854, 35999.4089666},
	{112392, 331.2622, 35998.7287385},
	{3891, 317.843, 71998.20261},
	{2819, 86.631, 71998.4403},
	{1721, 240.052, 36000.35726},
	{660, 310.26, 71997.4812},
	{350, 247.23, 32964.4678},
	{334, 260.87, -19.441},
	{314, 297.82, 445267.1117},
	{268, 343.14, 45036.884},
	{242, 166.79, 3.1008},
	{234, 81.53, 22518.4434},
	{158, 3.5, -19.9739},
	{132, 132.75, 65928.9345},
	{129, 182.95, 9038.0293},
	{114, 162.03, 3034.7684},
	{99, 29.8, 33718.148},
	{93, 266.4, 3034.448},
	{86, 249.2, -2280.773},
	{78, 157.6, 29929.992},
	{72, 257.8, 31556.493},
	{68, 185.1, 149.588},
	{64, 69.9, 9037.75},
	{46, 8.0, 107997.405},
	{38, 197.1, -4444.176},
	{37, 250.4, 151.771},
	{32, 65.3, 67555.316},
	{29, 162.7, 31556.08},
	{28, 341.5, -4561.54},
	{27, 291.6, 107996.706},
	{27, 98.5, 1221.655},
	{25, 146.7, 62894.167},
	{24, 110.0, 31437.369},
	{21, 5.2, 14578.298},
	{21, 342.6, -31931.757},
	{20, 230.9, 34777.243},
	{18, 256.1, 1221.999},
	{17, 45.3, 62894.511},
	{14, 242.9, -4442.039},
	{13, 115.2, 107997.909},
	{13, 151.8, 119.066},
	{13, 285.3, 16859.071},
	{12, 53.3, -4.578},
	{10, 126.6, 26895.292},
	{10, 205.7, -39.127},
	{10, 85.9, 12297.536},
	{10, 146.1, 90073.778},
}

// Polynomial coefficients, lowest degree first.
var (
	coefficients1900to1987 = [...]float64{-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591}
	coefficients1800to1899 = [...]float64{-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535, 31.332267, 38.291999, 28.316289, 11.636204, 2.043794}
	coefficients1700to1799 = [...]float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}
	coefficients1620to1699 = [...]float64{196.58333, -4.0675, 0.0219167}

	lambdaCoefficients       = [...]float64{280.46645, 36000.76983, 0.0003032}
	anomalyCoefficients      = [...]float64{357.52910, 35999.05030, -0.0001559, -0.00000048}
	eccentricityCoefficients = [...]float64{0.016708617, -0.000042037, -0.0000001236}
	obliquityCoefficients    = [...]float64{
		angle(23, 26, 21.448),
		angle(0, 0, -46.8150),
		angle(0, 0, -0.00059),
		angle(0, 0, 0.001813),
	}
	nutationACoefficients = [...]float64{124.90, -1934.134, 0.002063}
	nutationBCoefficients = [...]float64{201.11, 72001.5377, 0.00057}
)
