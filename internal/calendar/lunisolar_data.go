package calendar

// Rows are {leapMonth, newYearMonth, newYearDay, monthMask}: leapMonth is the
// regular month a leap month follows (0 when the year has none), the new year is a
// Gregorian month/day in the row's own year, and bit 15-i of monthMask is set when
// month i+1 has 30 days.

// chineseYears covers lunar years 1901-2100 reckoned at UTC+8. Taiwan's
// lunisolar calendar reads the 1912-2050 slice of the same table.
var chineseYears = lunarTable{
	firstYear: 1901,
	rows: []lunarYearRow{
		// 1901-1904
		{0, 2, 19, 0x4AE0}, {0, 2, 8, 0xA570}, {5, 1, 29, 0x5268}, {0, 2, 16, 0xD260},
		// 1905-1908
		{0, 2, 4, 0xD950}, {4, 1, 25, 0x6AA8}, {0, 2, 13, 0x56A0}, {0, 2, 2, 0x9AD0},
		// 1909-1912
		{2, 1, 22, 0x4AE8}, {0, 2, 10, 0x4AE0}, {6, 1, 30, 0xA4D8}, {0, 2, 18, 0xA4D0},
		// 1913-1916
		{0, 2, 6, 0xD250}, {5, 1, 26, 0xD528}, {0, 2, 14, 0xB540}, {0, 2, 3, 0xD6A0},
		// 1917-1920
		{3, 1, 23, 0x96D0}, {0, 2, 11, 0x95B0}, {7, 2, 1, 0x49B8}, {0, 2, 20, 0x4970},
		// 1921-1924
		{0, 2, 8, 0xA4B0}, {6, 1, 28, 0xB258}, {0, 2, 16, 0x6A50}, {0, 2, 5, 0x6D40},
		// 1925-1928
		{4, 1, 24, 0xADA8}, {0, 2, 13, 0x2B60}, {0, 2, 2, 0x9570}, {2, 1, 23, 0x4978},
		// 1929-1932
		{0, 2, 10, 0x4970}, {6, 1, 30, 0x64B0}, {0, 2, 17, 0xD4A0}, {0, 2, 6, 0xEA50},
		// 1933-1936
		{5, 1, 26, 0x6D48}, {0, 2, 14, 0x5AD0}, {0, 2, 4, 0x2B60}, {3, 1, 24, 0x9370},
		// 1937-1940
		{0, 2, 11, 0x92E0}, {7, 1, 31, 0xC968}, {0, 2, 19, 0xC950}, {0, 2, 8, 0xD4A0},
		// 1941-1944
		{6, 1, 27, 0xDA50}, {0, 2, 15, 0xB550}, {0, 2, 5, 0x56A0}, {4, 1, 25, 0xAAD8},
		// 1945-1948
		{0, 2, 13, 0x25D0}, {0, 2, 2, 0x92D0}, {2, 1, 22, 0xC958}, {0, 2, 10, 0xA950},
		// 1949-1952
		{7, 1, 29, 0xB4A8}, {0, 2, 17, 0x6CA0}, {0, 2, 6, 0xB550}, {5, 1, 27, 0x55A8},
		// 1953-1956
		{0, 2, 14, 0x4DB0}, {0, 2, 4, 0x25B0}, {3, 1, 24, 0x92B8}, {0, 2, 12, 0x52B0},
		// 1957-1960
		{8, 1, 31, 0xA950}, {0, 2, 18, 0xE950}, {0, 2, 8, 0x6AA0}, {6, 1, 28, 0xAD50},
		// 1961-1964
		{0, 2, 15, 0xAB50}, {0, 2, 5, 0x4B60}, {4, 1, 25, 0xA570}, {0, 2, 13, 0xA570},
		// 1965-1968
		{0, 2, 2, 0x5260}, {3, 1, 21, 0xE930}, {0, 2, 9, 0xD950}, {7, 1, 30, 0x5AA8},
		// 1969-1972
		{0, 2, 17, 0x56A0}, {0, 2, 6, 0x96D0}, {5, 1, 27, 0x4AE8}, {0, 2, 15, 0x4AD0},
		// 1973-1976
		{0, 2, 3, 0xA4D0}, {4, 1, 23, 0xD268}, {0, 2, 11, 0xD250}, {8, 1, 31, 0xD528},
		// 1977-1980
		{0, 2, 18, 0xB540}, {0, 2, 7, 0xB6A0}, {6, 1, 28, 0x96D0}, {0, 2, 16, 0x95B0},
		// 1981-1984
		{0, 2, 5, 0x49B0}, {4, 1, 25, 0xA4B8}, {0, 2, 13, 0xA4B0}, {10, 2, 2, 0xB258},
		// 1985-1988
		{0, 2, 20, 0x6A50}, {0, 2, 9, 0x6D40}, {7, 1, 29, 0xADA0}, {0, 2, 17, 0xAB60},
		// 1989-1992
		{0, 2, 6, 0x9570}, {5, 1, 27, 0x4978}, {0, 2, 15, 0x4970}, {0, 2, 4, 0x64B0},
		// 1993-1996
		{3, 1, 23, 0x6A50}, {0, 2, 10, 0xEA50}, {8, 1, 31, 0x6B28}, {0, 2, 19, 0x5AC0},
		// 1997-2000
		{0, 2, 7, 0xAB60}, {5, 1, 28, 0x9370}, {0, 2, 16, 0x92E0}, {0, 2, 5, 0xC960},
		// 2001-2004
		{4, 1, 24, 0xD4A8}, {0, 2, 12, 0xD4A0}, {0, 2, 1, 0xDA50}, {2, 1, 22, 0x5AA8},
		// 2005-2008
		{0, 2, 9, 0x56A0}, {7, 1, 29, 0xAAD8}, {0, 2, 18, 0x25D0}, {0, 2, 7, 0x92D0},
		// 2009-2012
		{5, 1, 26, 0xC958}, {0, 2, 14, 0xA950}, {0, 2, 3, 0xB4A0}, {4, 1, 23, 0xB650},
		// 2013-2016
		{0, 2, 10, 0xAD50}, {9, 1, 31, 0x55A8}, {0, 2, 19, 0x4BA0}, {0, 2, 8, 0xA5B0},
		// 2017-2020
		{6, 1, 28, 0x52B8}, {0, 2, 16, 0x5270}, {0, 2, 5, 0xA930}, {4, 1, 25, 0x74A8},
		// 2021-2024
		{0, 2, 12, 0x6AA0}, {0, 2, 1, 0xAD50}, {2, 1, 22, 0x4DA8}, {0, 2, 10, 0x4B60},
		// 2025-2028
		{6, 1, 29, 0xA570}, {0, 2, 17, 0xA4F0}, {0, 2, 7, 0x5260}, {5, 1, 26, 0xE930},
		// 2029-2032
		{0, 2, 13, 0xD520}, {0, 2, 2, 0xDAA0}, {3, 1, 23, 0x6B50}, {0, 2, 11, 0x96D0},
		// 2033-2036
		{11, 1, 31, 0x4AE8}, {0, 2, 19, 0x4AD0}, {0, 2, 8, 0xA4D0}, {6, 1, 28, 0xD258},
		// 2037-2040
		{0, 2, 15, 0xD250}, {0, 2, 4, 0xD520}, {5, 1, 24, 0xDAA0}, {0, 2, 12, 0xB5A0},
		// 2041-2044
		{0, 2, 1, 0x56D0}, {2, 1, 22, 0x4AD8}, {0, 2, 10, 0x49B0}, {7, 1, 30, 0xA4B8},
		// 2045-2048
		{0, 2, 17, 0xA4B0}, {0, 2, 6, 0xAA50}, {5, 1, 26, 0xB528}, {0, 2, 14, 0x6D20},
		// 2049-2052
		{0, 2, 2, 0xADA0}, {3, 1, 23, 0x55B0}, {0, 2, 11, 0x9370}, {8, 2, 1, 0x4978},
		// 2053-2056
		{0, 2, 19, 0x4970}, {0, 2, 8, 0x64B0}, {6, 1, 28, 0x6A50}, {0, 2, 15, 0xEA50},
		// 2057-2060
		{0, 2, 4, 0x6B20}, {4, 1, 24, 0xAB60}, {0, 2, 12, 0xAAE0}, {0, 2, 2, 0x92E0},
		// 2061-2064
		{3, 1, 21, 0xC970}, {0, 2, 9, 0xC960}, {7, 1, 29, 0xD4A8}, {0, 2, 17, 0xD4A0},
		// 2065-2068
		{0, 2, 5, 0xDA50}, {5, 1, 26, 0x5AA8}, {0, 2, 14, 0x56A0}, {0, 2, 3, 0xA6D0},
		// 2069-2072
		{4, 1, 23, 0x52E8}, {0, 2, 11, 0x92D0}, {8, 1, 31, 0xA958}, {0, 2, 19, 0xA950},
		// 2073-2076
		{0, 2, 7, 0xB4A0}, {6, 1, 27, 0xB550}, {0, 2, 15, 0xAD50}, {0, 2, 5, 0x55A0},
		// 2077-2080
		{4, 1, 24, 0xA5D0}, {0, 2, 12, 0xA5B0}, {0, 2, 2, 0x52B0}, {3, 1, 22, 0xA938},
		// 2081-2084
		{0, 2, 9, 0x6930}, {7, 1, 29, 0x7298}, {0, 2, 17, 0x6AA0}, {0, 2, 6, 0xAD50},
		// 2085-2088
		{5, 1, 26, 0x4DA8}, {0, 2, 14, 0x4B60}, {0, 2, 3, 0xA570}, {4, 1, 24, 0x5270},
		// 2089-2092
		{0, 2, 10, 0xD160}, {8, 1, 30, 0xE930}, {0, 2, 18, 0xD520}, {0, 2, 7, 0xDAA0},
		// 2093-2096
		{6, 1, 27, 0x6B50}, {0, 2, 15, 0x56D0}, {0, 2, 5, 0x4AE0}, {4, 1, 25, 0xA4E8},
		// 2097-2100
		{0, 2, 12, 0xA2D0}, {0, 2, 1, 0xD150}, {2, 1, 21, 0xD928}, {0, 2, 9, 0xD520},
	},
}

// koreanYears covers lunar years 918-2050 reckoned on Korean local time.
var koreanYears = lunarTable{
	firstYear: 918,
	rows: []lunarYearRow{
		// 918-921
		{0, 2, 19, 0x4BA0}, {0, 2, 8, 0xA5B0}, {5, 1, 29, 0x52B8}, {0, 2, 16, 0x5270},
		// 922-925
		{0, 2, 5, 0x6930}, {4, 1, 25, 0x74A8}, {0, 2, 13, 0x6AA0}, {0, 2, 1, 0xAD50},
		// 926-929
		{2, 1, 22, 0x4DA8}, {0, 2, 10, 0x4B60}, {6, 1, 30, 0xA570}, {0, 2, 17, 0xA4E0},
		// 930-933
		{0, 2, 6, 0xD260}, {5, 1, 26, 0xE930}, {0, 2, 14, 0xD520}, {0, 2, 2, 0xDAA0},
		// 934-937
		{3, 1, 23, 0x6B50}, {0, 2, 11, 0x96D0}, {7, 2, 1, 0x4AE8}, {0, 2, 19, 0x49D0},
		// 938-941
		{0, 2, 8, 0xA4D0}, {6, 1, 28, 0xD258}, {0, 2, 16, 0xB250}, {0, 2, 4, 0xB520},
		// 942-945
		{4, 1, 24, 0xDAA0}, {0, 2, 12, 0xB5A0}, {0, 2, 2, 0x55D0}, {2, 1, 22, 0x4AD8},
		// 946-949
		{0, 2, 10, 0x49B0}, {6, 1, 30, 0xA4B8}, {0, 2, 18, 0xA4B0}, {0, 2, 6, 0xAA50},
		// 950-953
		{5, 1, 26, 0xB528}, {0, 2, 14, 0x6D20}, {0, 2, 3, 0xAD60}, {3, 1, 23, 0x55B0},
		// 954-957
		{0, 2, 11, 0x9370}, {8, 2, 1, 0x4978}, {0, 2, 20, 0x4970}, {0, 2, 8, 0x64B0},
		// 958-961
		{6, 1, 28, 0x6A50}, {0, 2, 15, 0xDA50}, {0, 2, 5, 0x5AA0}, {4, 1, 24, 0xAB60},
		// 962-965
		{0, 2, 12, 0xAAE0}, {0, 2, 2, 0x92E0}, {2, 1, 22, 0xC970}, {0, 2, 9, 0xC950},
		// 966-969
		{7, 1, 29, 0xD4A8}, {0, 2, 17, 0xD4A0}, {0, 2, 6, 0xDA50}, {5, 1, 26, 0x5AA8},
		// 970-973
		{0, 2, 14, 0x56A0}, {0, 2, 3, 0xA6D0}, {3, 1, 24, 0x52E8}, {0, 2, 11, 0x52B0},
		// 974-977
		{8, 1, 31, 0xA958}, {0, 2, 19, 0xA950}, {0, 2, 8, 0xB4A0}, {6, 1, 27, 0xB550},
		// 978-981
		{0, 2, 15, 0xAD50}, {0, 2, 5, 0x55A0}, {4, 1, 25, 0xA5D0}, {0, 2, 12, 0xA570},
		// 982-985
		{0, 2, 2, 0x52B0}, {3, 1, 22, 0xA938}, {0, 2, 10, 0x6930}, {7, 1, 29, 0x6A98},
		// 986-989
		{0, 2, 17, 0x6AA0}, {0, 2, 6, 0xAB50}, {5, 1, 27, 0x4DA8}, {0, 2, 14, 0x4B60},
		// 990-993
		{0, 2, 3, 0xA570}, {4, 1, 24, 0x5170}, {0, 2, 11, 0xD260}, {8, 1, 30, 0xE928},
		// 994-997
		{0, 2, 18, 0xD520}, {0, 2, 7, 0xDAA0}, {6, 1, 28, 0x5B50}, {0, 2, 15, 0x56D0},
		// 998-1001
		{0, 2, 5, 0x4AE0}, {4, 1, 25, 0xA4E8}, {0, 2, 13, 0xA2D0}, {0, 2, 2, 0xD150},
		// 1002-1005
		{2, 1, 22, 0xD528}, {0, 2, 10, 0xB520}, {7, 1, 30, 0xD690}, {0, 2, 17, 0xADA0},
		// 1006-1009
		{0, 2, 7, 0x55D0}, {5, 1, 28, 0x4AD8}, {0, 2, 16, 0x49B0}, {0, 2, 4, 0xA2B0},
		// 1010-1013
		{4, 1, 24, 0xB258}, {0, 2, 12, 0xAA50}, {8, 2, 1, 0xB528}, {0, 2, 19, 0x6B20},
		// 1014-1017
		{0, 2, 8, 0xAD60}, {6, 1, 29, 0x55B0}, {0, 2, 17, 0x9370}, {0, 2, 6, 0x4970},
		// 1018-1021
		{4, 1, 26, 0x64B8}, {0, 2, 14, 0x54A0}, {0, 2, 2, 0xEA50}, {3, 1, 22, 0x6D28},
		// 1022-1025
		{0, 2, 10, 0x5AA0}, {7, 1, 30, 0xAB50}, {0, 2, 18, 0xA6D0}, {0, 2, 7, 0x52E0},
		// 1026-1029
		{5, 1, 27, 0xC970}, {0, 2, 15, 0xA950}, {0, 2, 4, 0xD4A0}, {4, 1, 23, 0xEA50},
		// 1030-1033
		{0, 2, 11, 0xD550}, {9, 2, 1, 0x5AA8}, {0, 2, 20, 0x56A0}, {0, 2, 8, 0xA6D0},
		// 1034-1037
		{6, 1, 29, 0x52E8}, {0, 2, 17, 0x52B0}, {0, 2, 6, 0xA8D0}, {4, 1, 25, 0xD498},
		// 1038-1041
		{0, 2, 13, 0xB2A0}, {0, 2, 2, 0xB550}, {2, 1, 23, 0x56A8}, {0, 2, 10, 0x4DA0},
		// 1042-1045
		{6, 1, 30, 0xA5B0}, {0, 2, 18, 0xA570}, {0, 2, 8, 0x51B0}, {5, 1, 27, 0xA8B8},
		// 1046-1049
		{0, 2, 15, 0x68B0}, {0, 2, 4, 0x6A90}, {4, 1, 24, 0xB550}, {0, 2, 11, 0x6B50},
		// 1050-1053
		{11, 2, 1, 0x2B68}, {0, 2, 20, 0x2B60}, {0, 2, 9, 0xA570}, {6, 1, 29, 0x5170},
		// 1054-1057
		{0, 2, 16, 0xD160}, {0, 2, 5, 0xE4A0}, {5, 1, 25, 0xEA90}, {0, 2, 12, 0xDA90},
		// 1058-1061
		{0, 2, 2, 0x5B50}, {2, 1, 23, 0x2B68}, {0, 2, 11, 0x2AE0}, {7, 1, 30, 0xA2E8},
		// 1062-1065
		{0, 2, 18, 0xA2D0}, {0, 2, 7, 0xD150}, {5, 1, 27, 0xD4A8}, {0, 2, 14, 0xB520},
		// 1066-1069
		{0, 2, 3, 0xB690}, {3, 1, 24, 0x56D0}, {0, 2, 12, 0x55B0}, {10, 2, 1, 0x29D8},
		// 1070-1073
		{0, 2, 20, 0x45B0}, {0, 2, 9, 0xA2B0}, {6, 1, 29, 0xA958}, {0, 2, 16, 0x6950},
		// 1074-1077
		{0, 2, 5, 0x74A0}, {4, 1, 25, 0xB550}, {0, 2, 13, 0xAD50}, {0, 2, 2, 0x55B0},
		// 1078-1081
		{3, 1, 23, 0x25B8}, {0, 2, 11, 0x4570}, {7, 1, 31, 0x52B8}, {0, 2, 18, 0x52A0},
		// 1082-1085
		{0, 2, 6, 0xE950}, {6, 1, 27, 0x6CA8}, {0, 2, 15, 0x5AA0}, {0, 2, 3, 0xAB50},
		// 1086-1089
		{4, 1, 24, 0x5368}, {0, 2, 12, 0x4AE0}, {8, 2, 1, 0xA570}, {0, 2, 19, 0xA550},
		// 1090-1093
		{0, 2, 8, 0xD2A0}, {6, 1, 28, 0xD950}, {0, 2, 16, 0xD550}, {0, 2, 5, 0x56A0},
		// 1094-1097
		{5, 1, 25, 0xAAD0}, {0, 2, 13, 0x95D0}, {0, 2, 3, 0x4AD0}, {3, 1, 22, 0xA558},
		// 1098-1101
		{0, 2, 10, 0xA4D0}, {7, 1, 30, 0xD258}, {0, 2, 18, 0xB290}, {0, 2, 7, 0xB550},
		// 1102-1105
		{5, 1, 28, 0x56A8}, {0, 2, 16, 0x2DA0}, {0, 2, 5, 0x95B0}, {3, 1, 25, 0x4AB8},
		// 1106-1109
		{0, 2, 13, 0x4970}, {8, 2, 2, 0xA4B8}, {0, 2, 21, 0x64B0}, {0, 2, 9, 0x6A90},
		// 1110-1113
		{6, 1, 29, 0x6D48}, {0, 2, 17, 0x6B50}, {0, 2, 7, 0x2B60}, {4, 1, 26, 0x9570},
		// 1114-1117
		{0, 2, 14, 0x9370}, {0, 2, 4, 0x4970}, {3, 1, 24, 0x64B0}, {0, 2, 10, 0xD4A0},
		// 1118-1121
		{7, 1, 30, 0xEA50}, {0, 2, 18, 0xDA90}, {0, 2, 8, 0x5AD0}, {5, 1, 28, 0x2B68},
		// 1122-1125
		{0, 2, 16, 0x2AE0}, {0, 2, 5, 0x92E0}, {4, 1, 25, 0xC968}, {0, 2, 12, 0xC950},
		// 1126-1129
		{9, 2, 1, 0xD4A8}, {0, 2, 20, 0xB4A0}, {0, 2, 9, 0xB690}, {6, 1, 29, 0x56D0},
		// 1130-1133
		{0, 2, 17, 0x55B0}, {0, 2, 7, 0x25D0}, {4, 1, 27, 0x92D8}, {0, 2, 14, 0x92B0},
		// 1134-1137
		{0, 2, 3, 0xA950}, {3, 1, 23, 0xB4A8}, {0, 2, 11, 0x74A0}, {7, 1, 30, 0xB550},
		// 1138-1141
		{0, 2, 18, 0xAB50}, {0, 2, 8, 0x55B0}, {5, 1, 29, 0x25B8}, {0, 2, 16, 0x2570},
		// 1142-1145
		{0, 2, 5, 0x52B0}, {4, 1, 25, 0xA950}, {0, 2, 12, 0xE950}, {11, 2, 1, 0x6CA8},
		// 1146-1149
		{0, 2, 20, 0x5AA0}, {0, 2, 9, 0xAB50}, {6, 1, 30, 0x4B68}, {0, 2, 17, 0x4AE0},
		// 1150-1153
		{0, 2, 6, 0xA560}, {5, 1, 26, 0xD268}, {0, 2, 14, 0xD260}, {0, 2, 2, 0xD950},
		// 1154-1157
		{2, 1, 23, 0x5AA8}, {0, 2, 11, 0x56A0}, {7, 1, 31, 0x9AD0}, {0, 2, 18, 0x95D0},
		// 1158-1161
		{0, 2, 8, 0x4AD0}, {5, 1, 28, 0xA4D8}, {0, 2, 16, 0xA4D0}, {0, 2, 4, 0xD250},
		// 1162-1165
		{4, 1, 24, 0xD548}, {0, 2, 12, 0xB550}, {0, 2, 2, 0x36A0}, {1, 1, 21, 0x96D0},
		// 1166-1169
		{0, 2, 9, 0x95B0}, {6, 1, 30, 0x49B8}, {0, 2, 18, 0x4970}, {0, 2, 6, 0xA4B0},
		// 1170-1173
		{5, 1, 26, 0xB258}, {0, 2, 14, 0x6A50}, {0, 2, 3, 0x6D40}, {3, 1, 22, 0xADA8},
		// 1174-1177
		{0, 2, 11, 0x2B60}, {7, 1, 31, 0x9570}, {0, 2, 19, 0x92F0}, {0, 2, 8, 0x4970},
		// 1178-1181
		{6, 1, 28, 0x64B0}, {0, 2, 15, 0xD4A0}, {0, 2, 4, 0xEA50}, {4, 1, 24, 0x6D48},
		// 1182-1185
		{0, 2, 12, 0x5AD0}, {0, 2, 2, 0x2B60}, {1, 1, 22, 0x9370}, {0, 2, 9, 0x92E0},
		// 1186-1189
		{6, 1, 29, 0xC968}, {0, 2, 17, 0xC950}, {0, 2, 6, 0xD4A0}, {5, 1, 25, 0xDA50},
		// 1190-1193
		{0, 2, 13, 0xB550}, {0, 2, 3, 0x56A0}, {3, 1, 23, 0xAAD8}, {0, 2, 11, 0x25D0},
		// 1194-1197
		{7, 1, 31, 0x92D8}, {0, 2, 19, 0x92B0}, {0, 2, 8, 0xA950}, {6, 1, 27, 0xB4A8},
		// 1198-1201
		{0, 2, 15, 0x6CA0}, {0, 2, 4, 0xAD50}, {4, 1, 25, 0x55A8}, {0, 2, 12, 0x4BB0},
		// 1202-1205
		{0, 2, 2, 0x25B0}, {2, 1, 22, 0x52B8}, {0, 2, 10, 0x52B0}, {6, 1, 29, 0x6950},
		// 1206-1209
		{0, 2, 16, 0xE950}, {0, 2, 6, 0x6AA0}, {5, 1, 26, 0xAD50}, {0, 2, 13, 0xAB50},
		// 1210-1213
		{0, 2, 3, 0x4B60}, {3, 1, 23, 0xA570}, {0, 2, 11, 0xA4E0}, {7, 1, 30, 0xD268},
		// 1214-1217
		{0, 2, 18, 0xD260}, {0, 2, 7, 0xD950}, {6, 1, 28, 0x5AA8}, {0, 2, 15, 0x56A0},
		// 1218-1221
		{0, 2, 4, 0x96D0}, {4, 1, 25, 0x4AE8}, {0, 2, 13, 0x4AD0}, {10, 2, 1, 0xA4D8},
		// 1222-1225
		{0, 2, 20, 0xA4B0}, {0, 2, 9, 0xD250}, {6, 1, 29, 0xD528}, {0, 2, 16, 0xB540},
		// 1226-1229
		{0, 2, 5, 0xB6A0}, {4, 1, 26, 0x96D0}, {0, 2, 14, 0x95B0}, {0, 2, 3, 0x49B0},
		// 1230-1233
		{3, 1, 23, 0xA4B8}, {0, 2, 11, 0xA4B0}, {7, 1, 31, 0xB258}, {0, 2, 18, 0x6A50},
		// 1234-1237
		{0, 2, 7, 0x6D40}, {6, 1, 27, 0xADA8}, {0, 2, 16, 0x2B60}, {0, 2, 4, 0x9570},
		// 1238-1241
		{4, 1, 25, 0x4978}, {0, 2, 13, 0x4970}, {0, 2, 2, 0x64B0}, {2, 1, 21, 0x6A50},
		// 1242-1245
		{0, 2, 8, 0xEA50}, {7, 1, 29, 0x6B28}, {0, 2, 17, 0x56C0}, {0, 2, 5, 0xAB60},
		// 1246-1249
		{5, 1, 26, 0x9368}, {0, 2, 14, 0x92E0}, {0, 2, 3, 0xC960}, {3, 1, 22, 0xD4A8},
		// 1250-1253
		{0, 2, 10, 0xD4A0}, {8, 1, 30, 0xDA50}, {0, 2, 18, 0xB550}, {0, 2, 7, 0x56A0},
		// 1254-1257
		{5, 1, 27, 0xA6D8}, {0, 2, 16, 0x25D0}, {0, 2, 5, 0x92D0}, {4, 1, 24, 0xA958},
		// 1258-1261
		{0, 2, 12, 0xA950}, {0, 2, 1, 0xB4A0}, {1, 1, 21, 0xB550}, {0, 2, 8, 0xAD50},
		// 1262-1265
		{6, 1, 29, 0x55A8}, {0, 2, 17, 0x4BA0}, {0, 2, 6, 0xA5B0}, {5, 1, 26, 0x52B8},
		// 1266-1269
		{0, 2, 14, 0x5270}, {0, 2, 3, 0x6930}, {4, 1, 23, 0x74A8}, {0, 2, 10, 0x6AA0},
		// 1270-1273
		{8, 1, 30, 0xAD50}, {0, 2, 18, 0x9B50}, {0, 2, 8, 0x4B60}, {6, 1, 27, 0xA570},
		// 1274-1277
		{0, 2, 15, 0xA4E0}, {0, 2, 4, 0xD260}, {4, 1, 24, 0xE930}, {0, 2, 11, 0xD520},
		// 1278-1281
		{12, 1, 31, 0xDAA0}, {0, 2, 19, 0xD6A0}, {0, 2, 9, 0x96D0}, {6, 1, 29, 0x4AE8},
		// 1282-1285
		{0, 2, 17, 0x4AD0}, {0, 2, 6, 0xA4D0}, {5, 1, 26, 0xD258}, {0, 2, 13, 0xB250},
		// 1286-1289
		{0, 2, 2, 0xB520}, {3, 1, 22, 0xDAA0}, {0, 2, 10, 0xB5A0}, {8, 1, 30, 0x95D0},
		// 1290-1293
		{0, 2, 18, 0x95B0}, {0, 2, 8, 0x49B0}, {6, 1, 28, 0xA4B8}, {0, 2, 15, 0xA4B0},
		// 1294-1297
		{0, 2, 4, 0xAA50}, {4, 1, 24, 0xB528}, {0, 2, 12, 0x6D40}, {0, 1, 31, 0xADA0},
		// 1298-1301
		{2, 1, 21, 0x55B0}, {0, 2, 9, 0x9370}, {6, 1, 30, 0x4978}, {0, 2, 18, 0x4970},
		// 1302-1305
		{0, 2, 7, 0x64B0}, {5, 1, 27, 0x6A50}, {0, 2, 14, 0xDA50}, {0, 2, 3, 0x6AA0},
		// 1306-1309
		{3, 1, 23, 0xAB60}, {0, 2, 11, 0xAAE0}, {7, 2, 1, 0x92E8}, {0, 2, 19, 0x92E0},
		// 1310-1313
		{0, 2, 8, 0xC960}, {6, 1, 28, 0xD4A8}, {0, 2, 16, 0xD4A0}, {0, 2, 4, 0xDA50},
		// 1314-1317
		{4, 1, 25, 0x5AA8}, {0, 2, 13, 0x56A0}, {0, 2, 2, 0xA6D0}, {2, 1, 22, 0x52E8},
		// 1318-1321
		{0, 2, 10, 0x92B0}, {6, 1, 30, 0xA958}, {0, 2, 18, 0xA950}, {0, 2, 6, 0xB4A0},
		// 1322-1325
		{5, 1, 26, 0xB550}, {0, 2, 14, 0xAD50}, {0, 2, 4, 0x55A0}, {3, 1, 23, 0xA5D0},
		// 1326-1329
		{0, 2, 11, 0xA5B0}, {7, 2, 1, 0x52B8}, {0, 2, 20, 0x5270}, {0, 2, 8, 0x6930},
		// 1330-1333
		{6, 1, 28, 0x7498}, {0, 2, 16, 0x6AA0}, {0, 2, 5, 0xAD50}, {4, 1, 25, 0x4DA8},
		// 1334-1337
		{0, 2, 13, 0x4B60}, {0, 2, 2, 0xA570}, {2, 1, 23, 0x5270}, {0, 2, 9, 0xD260},
		// 1338-1341
		{7, 1, 29, 0xE930}, {0, 2, 17, 0xD520}, {0, 2, 6, 0xDAA0}, {5, 1, 26, 0x5B50},
		// 1342-1345
		{0, 2, 14, 0x56D0}, {0, 2, 4, 0x4AE0}, {3, 1, 24, 0xA4E8}, {0, 2, 11, 0xA4D0},
		// 1346-1349
		{8, 1, 31, 0xD258}, {0, 2, 19, 0xB250}, {0, 2, 8, 0xB520}, {6, 1, 27, 0xD690},
		// 1350-1353
		{0, 2, 15, 0xB5A0}, {0, 2, 5, 0x55D0}, {4, 1, 26, 0x4AD8}, {0, 2, 13, 0x49B0},
		// 1354-1357
		{0, 2, 2, 0xA4B0}, {3, 1, 22, 0xD258}, {0, 2, 10, 0xAA50}, {7, 1, 29, 0xB528},
		// 1358-1361
		{0, 2, 17, 0x6D20}, {0, 2, 6, 0xAD60}, {5, 1, 27, 0x55B0}, {0, 2, 14, 0x9370},
		// 1362-1365
		{0, 2, 4, 0x4970}, {4, 1, 24, 0x64B8}, {0, 2, 12, 0x64B0}, {8, 1, 31, 0x6A50},
		// 1366-1369
		{0, 2, 18, 0xDA50}, {0, 2, 8, 0x5AA0}, {6, 1, 28, 0xAB50}, {0, 2, 15, 0xAAE0},
		// 1370-1373
		{0, 2, 5, 0x52E0}, {4, 1, 25, 0xC970}, {0, 2, 13, 0xC960}, {0, 2, 1, 0xD4A0},
		// 1374-1377
		{3, 1, 21, 0xEA50}, {0, 2, 9, 0xD550}, {7, 1, 30, 0x5AA8}, {0, 2, 17, 0x56A0},
		// 1378-1381
		{0, 2, 6, 0xA6D0}, {5, 1, 27, 0x52E8}, {0, 2, 15, 0x52B0}, {0, 2, 3, 0xA950},
		// 1382-1385
		{4, 1, 23, 0xD4A8}, {0, 2, 11, 0xB2A0}, {8, 1, 31, 0xB550}, {0, 2, 18, 0xAD50},
		// 1386-1389
		{0, 2, 8, 0x4DA0}, {6, 1, 28, 0xA5B0}, {0, 2, 16, 0xA570}, {0, 2, 5, 0x52B0},
		// 1390-1393
		{5, 1, 25, 0xA8B8}, {0, 2, 13, 0x6930}, {0, 2, 2, 0x6A90}, {2, 1, 21, 0xB550},
		// 1394-1397
		{0, 2, 9, 0xAB50}, {7, 1, 30, 0x2BA8}, {0, 2, 18, 0x4B60}, {0, 2, 6, 0xA570},
		// 1398-1401
		{5, 1, 27, 0x5170}, {0, 2, 14, 0xD160}, {0, 2, 3, 0xE920}, {4, 1, 23, 0xEA90},
		// 1402-1405
		{0, 2, 11, 0xDA90}, {10, 2, 1, 0x5B50}, {0, 2, 20, 0x56D0}, {0, 2, 9, 0x4AE0},
		// 1406-1409
		{6, 1, 29, 0xA4E8}, {0, 2, 17, 0xA2D0}, {0, 2, 6, 0xD150}, {4, 1, 25, 0xD4A8},
		// 1410-1413
		{0, 2, 13, 0xB520}, {0, 2, 2, 0xD690}, {2, 1, 23, 0x56D0}, {0, 2, 10, 0x55B0},
		// 1414-1417
		{7, 1, 31, 0x2AD8}, {0, 2, 19, 0x45B0}, {0, 2, 8, 0xA2B0}, {5, 1, 27, 0xB158},
		// 1418-1421
		{0, 2, 15, 0xA950}, {0, 2, 4, 0xB520}, {4, 1, 24, 0xB590}, {0, 2, 11, 0xAD60},
		// 1422-1425
		{0, 2, 1, 0x55B0}, {1, 1, 22, 0x29B8}, {0, 2, 10, 0x4570}, {6, 1, 29, 0x62B8},
		// 1426-1429
		{0, 2, 17, 0x52B0}, {0, 2, 6, 0x6950}, {5, 1, 26, 0x6CA8}, {0, 2, 13, 0x5AA0},
		// 1430-1433
		{0, 2, 2, 0xAB50}, {2, 1, 23, 0x5368}, {0, 2, 11, 0x4AE0}, {7, 1, 30, 0xA570},
		// 1434-1437
		{0, 2, 18, 0xA560}, {0, 2, 7, 0xD2A0}, {5, 1, 27, 0xE950}, {0, 2, 14, 0xD550},
		// 1438-1441
		{0, 2, 4, 0x5AA0}, {3, 1, 24, 0xAB50}, {0, 2, 12, 0xA6D0}, {0, 2, 1, 0x4AE0},
		// 1442-1445
		{1, 1, 21, 0xA558}, {0, 2, 9, 0xA4D0}, {6, 1, 29, 0xD258}, {0, 2, 16, 0xB290},
		// 1446-1449
		{0, 2, 5, 0xB550}, {4, 1, 26, 0x56A8}, {0, 2, 14, 0x4DA0}, {0, 2, 2, 0x95B0},
		// 1450-1453
		{3, 1, 23, 0x4AB8}, {0, 2, 11, 0x49B0}, {7, 1, 31, 0xA8B8}, {0, 2, 18, 0x64B0},
		// 1454-1457
		{0, 2, 7, 0x6A90}, {6, 1, 27, 0xB550}, {0, 2, 15, 0x6B50}, {0, 2, 4, 0x2B60},
		// 1458-1461
		{4, 1, 24, 0x95B0}, {0, 2, 12, 0x9370}, {8, 2, 2, 0x5170}, {0, 2, 19, 0xC960},
		// 1462-1465
		{0, 2, 8, 0xE4A0}, {6, 1, 28, 0xEA90}, {0, 2, 16, 0xDA90}, {0, 2, 5, 0x5B50},
		// 1466-1469
		{4, 1, 26, 0x2B68}, {0, 2, 14, 0x2AE0}, {0, 2, 3, 0x92E0}, {3, 1, 22, 0xD168},
		// 1470-1473
		{0, 2, 10, 0xC950}, {7, 1, 30, 0xD4A8}, {0, 2, 18, 0xB4A0}, {0, 2, 6, 0xB690},
		// 1474-1477
		{5, 1, 27, 0x56D0}, {0, 2, 15, 0x55B0}, {0, 2, 5, 0x25D0}, {4, 1, 24, 0x92D8},
		// 1478-1481
		{0, 2, 12, 0x92B0}, {8, 2, 1, 0xA958}, {0, 2, 20, 0x6950}, {0, 2, 8, 0x74A0},
		// 1482-1485
		{6, 1, 28, 0xB550}, {0, 2, 16, 0xAD50}, {0, 2, 6, 0x55B0}, {4, 1, 26, 0x25B8},
		// 1486-1489
		{0, 2, 14, 0x2570}, {0, 2, 3, 0x52B0}, {3, 1, 23, 0xA958}, {0, 2, 10, 0x6950},
		// 1490-1493
		{7, 1, 30, 0x6CA8}, {0, 2, 18, 0x5AA0}, {0, 2, 7, 0xAB50}, {5, 1, 27, 0x4B68},
		// 1494-1497
		{0, 2, 15, 0x4AE0}, {0, 2, 4, 0xA570}, {4, 1, 25, 0x5268}, {0, 2, 11, 0xD260},
		// 1498-1501
		{10, 1, 31, 0xD950}, {0, 2, 19, 0xB550}, {0, 2, 9, 0x56A0}, {6, 1, 29, 0xAAD0},
		// 1502-1505
		{0, 2, 17, 0x95D0}, {0, 2, 7, 0x4AD0}, {4, 1, 27, 0xA4D8}, {0, 2, 14, 0xA4D0},
		// 1506-1509
		{0, 2, 3, 0xD250}, {3, 1, 23, 0xD948}, {0, 2, 11, 0xB550}, {7, 1, 31, 0x56A8},
		// 1510-1513
		{0, 2, 19, 0x2DA0}, {0, 2, 8, 0x95B0}, {5, 1, 29, 0x49B8}, {0, 2, 16, 0x49B0},
		// 1514-1517
		{0, 2, 5, 0xA4B0}, {4, 1, 25, 0xB258}, {0, 2, 13, 0x6A50}, {11, 2, 1, 0xAD48},
		// 1518-1521
		{0, 2, 20, 0x6B50}, {0, 2, 10, 0x2B60}, {6, 1, 30, 0x9570}, {0, 2, 17, 0x9370},
		// 1522-1525
		{0, 2, 7, 0x4970}, {5, 1, 27, 0x64B0}, {0, 2, 14, 0xD4A0}, {0, 2, 2, 0xEA50},
		// 1526-1529
		{3, 1, 23, 0x6D48}, {0, 2, 11, 0x5AD0}, {8, 2, 1, 0x2B68}, {0, 2, 19, 0x26E0},
		// 1530-1533
		{0, 2, 8, 0x92E0}, {5, 1, 28, 0xC968}, {0, 2, 16, 0xC950}, {0, 2, 4, 0xD4A0},
		// 1534-1537
		{4, 1, 24, 0xDA50}, {0, 2, 12, 0xB650}, {0, 2, 2, 0x56B0}, {1, 1, 22, 0x2AD8},
		// 1538-1541
		{0, 2, 10, 0x25D0}, {6, 1, 30, 0x92D8}, {0, 2, 18, 0x92B0}, {0, 2, 6, 0xA950},
		// 1542-1545
		{5, 1, 26, 0xB4A8}, {0, 2, 14, 0x6CA0}, {0, 2, 3, 0xB550}, {3, 1, 23, 0x55A8},
		// 1546-1549
		{0, 2, 11, 0x4DB0}, {7, 2, 1, 0x25B8}, {0, 2, 20, 0x2570}, {0, 2, 8, 0x52B0},
		// 1550-1553
		{6, 1, 28, 0xA950}, {0, 2, 15, 0xE950}, {0, 2, 5, 0x6AA0}, {4, 1, 24, 0xAD50},
		// 1554-1557
		{0, 2, 12, 0xAB50}, {0, 2, 2, 0x4B60}, {1, 1, 22, 0xA570}, {0, 2, 9, 0xA570},
		// 1558-1561
		{6, 1, 30, 0x5268}, {0, 2, 17, 0xD260}, {0, 2, 6, 0xD950}, {5, 1, 26, 0x5AA8},
		// 1562-1565
		{0, 2, 14, 0x56A0}, {0, 2, 3, 0x96D0}, {3, 1, 24, 0x4AE8}, {0, 2, 11, 0x4AD0},
		// 1566-1569
		{7, 1, 31, 0xA4D8}, {0, 2, 19, 0xA4D0}, {0, 2, 8, 0xD250}, {6, 1, 27, 0xD528},
		// 1570-1573
		{0, 2, 15, 0xB540}, {0, 2, 4, 0xB6A0}, {4, 1, 25, 0x96D0}, {0, 2, 12, 0x95B0},
		// 1574-1577
		{0, 2, 2, 0x49B0}, {2, 1, 22, 0xA4B8}, {0, 2, 10, 0xA4B0}, {7, 1, 29, 0xB258},
		// 1578-1581
		{0, 2, 17, 0x6A50}, {0, 2, 6, 0x6D40}, {5, 1, 26, 0xADA8}, {0, 2, 14, 0x2B60},
		// 1582-1585
		{0, 2, 3, 0x9570}, {3, 1, 24, 0x4978}, {0, 2, 12, 0x4970}, {7, 1, 31, 0x64B0},
		// 1586-1589
		{0, 2, 18, 0xD4A0}, {0, 2, 7, 0xEA50}, {5, 1, 28, 0x6B48}, {0, 2, 15, 0x5AD0},
		// 1590-1593
		{0, 2, 5, 0x2B60}, {4, 1, 25, 0x9370}, {0, 2, 13, 0x92E0}, {0, 2, 1, 0xC960},
		// 1594-1597
		{3, 1, 21, 0xE4A8}, {0, 2, 9, 0xD4A0}, {7, 1, 29, 0xDA50}, {0, 2, 16, 0xB550},
		// 1598-1601
		{0, 2, 6, 0x56A0}, {5, 1, 26, 0xAAD8}, {0, 2, 15, 0x25D0}, {0, 2, 3, 0x92D0},
		// 1602-1605
		{3, 1, 23, 0xC958}, {0, 2, 11, 0xA950}, {7, 1, 31, 0xB4A8}, {0, 2, 18, 0x6CA0},
		// 1606-1609
		{0, 2, 7, 0xB550}, {6, 1, 28, 0x55A8}, {0, 2, 16, 0x4BA0}, {0, 2, 4, 0xA5B0},
		// 1610-1613
		{4, 1, 25, 0x52B8}, {0, 2, 13, 0x52B0}, {0, 2, 2, 0x6930}, {2, 1, 21, 0x74A8},
		// 1614-1617
		{0, 2, 9, 0x6AA0}, {7, 1, 29, 0xAD50}, {0, 2, 17, 0xAB50}, {0, 2, 6, 0x4B60},
		// 1618-1621
		{5, 1, 26, 0xA570}, {0, 2, 14, 0xA4F0}, {0, 2, 4, 0x5260}, {3, 1, 22, 0xE930},
		// 1622-1625
		{0, 2, 10, 0xD920}, {8, 1, 30, 0xDAA0}, {0, 2, 18, 0xD6A0}, {0, 2, 7, 0x96D0},
		// 1626-1629
		{5, 1, 28, 0x4AE8}, {0, 2, 16, 0x4AD0}, {0, 2, 5, 0xA4D0}, {4, 1, 24, 0xD258},
		// 1630-1633
		{0, 2, 12, 0xD250}, {0, 2, 1, 0xD520}, {2, 1, 21, 0xDAA0}, {0, 2, 8, 0xB5A0},
		// 1634-1637
		{7, 1, 29, 0x96D0}, {0, 2, 17, 0x95B0}, {0, 2, 7, 0x49B0}, {5, 1, 26, 0xA4B8},
		// 1638-1641
		{0, 2, 14, 0xA4B0}, {0, 2, 3, 0xB250}, {4, 1, 23, 0xB528}, {0, 2, 10, 0x6D40},
		// 1642-1645
		{9, 1, 30, 0xADA0}, {0, 2, 18, 0xAB60}, {0, 2, 8, 0x9370}, {6, 1, 28, 0x4978},
		// 1646-1649
		{0, 2, 16, 0x4970}, {0, 2, 5, 0x64B0}, {4, 1, 25, 0x6A50}, {0, 2, 11, 0xEA50},
		// 1650-1653
		{0, 2, 1, 0x6B20}, {1, 1, 21, 0xAB60}, {0, 2, 9, 0xAB60}, {6, 1, 29, 0x9368},
		// 1654-1657
		{0, 2, 17, 0x92E0}, {0, 2, 6, 0xC960}, {5, 1, 26, 0xD4A8}, {0, 2, 13, 0xD4A0},
		// 1658-1661
		{0, 2, 2, 0xDA50}, {3, 1, 23, 0x5AA8}, {0, 2, 11, 0x56A0}, {8, 1, 30, 0xA6D8},
		// 1662-1665
		{0, 2, 19, 0x25D0}, {0, 2, 8, 0x92D0}, {6, 1, 28, 0xA958}, {0, 2, 15, 0xA950},
		// 1666-1669
		{0, 2, 4, 0xB4A0}, {4, 1, 24, 0xB550}, {0, 2, 12, 0xAD50}, {0, 2, 1, 0x55A0},
		// 1670-1673
		{2, 1, 21, 0xA5D0}, {0, 2, 9, 0xA5B0}, {7, 1, 30, 0x52B8}, {0, 2, 17, 0x5270},
		// 1674-1677
		{0, 2, 6, 0x6930}, {5, 1, 26, 0x7498}, {0, 2, 14, 0x6AA0}, {0, 2, 2, 0xAD50},
		// 1678-1681
		{3, 1, 23, 0x4DA8}, {0, 2, 11, 0x4B60}, {8, 1, 31, 0xA570}, {0, 2, 18, 0xA4E0},
		// 1682-1685
		{0, 2, 7, 0xD260}, {6, 1, 27, 0xE930}, {0, 2, 15, 0xD520}, {0, 2, 3, 0xDAA0},
		// 1686-1689
		{4, 1, 24, 0x6B50}, {0, 2, 12, 0x96D0}, {0, 2, 2, 0x4AE0}, {3, 1, 21, 0xA4E8},
		// 1690-1693
		{0, 2, 9, 0xA4D0}, {7, 1, 29, 0xD258}, {0, 2, 17, 0xB250}, {0, 2, 5, 0xD520},
		// 1694-1697
		{5, 1, 25, 0xDAA0}, {0, 2, 13, 0xB5A0}, {0, 2, 3, 0x55D0}, {3, 1, 23, 0x4AD8},
		// 1698-1701
		{0, 2, 11, 0x49B0}, {7, 1, 31, 0xA4B8}, {0, 2, 19, 0xA4B0}, {0, 2, 8, 0xAA50},
		// 1702-1705
		{6, 1, 28, 0xB528}, {0, 2, 16, 0x6D20}, {0, 2, 5, 0xAD60}, {4, 1, 25, 0x55B0},
		// 1706-1709
		{0, 2, 13, 0x9370}, {0, 2, 3, 0x4970}, {3, 1, 23, 0xA4B8}, {0, 2, 10, 0x64B0},
		// 1710-1713
		{7, 1, 30, 0x6A50}, {0, 2, 17, 0xDA50}, {0, 2, 7, 0x5AA0}, {5, 1, 26, 0xAB60},
		// 1714-1717
		{0, 2, 14, 0xAAE0}, {0, 2, 4, 0x92E0}, {3, 1, 24, 0xC970}, {0, 2, 11, 0xC960},
		// 1718-1721
		{8, 1, 31, 0xD4A8}, {0, 2, 19, 0xD4A0}, {0, 2, 8, 0xDA50}, {6, 1, 28, 0x5AA8},
		// 1722-1725
		{0, 2, 16, 0x56A0}, {0, 2, 5, 0xA6D0}, {4, 1, 26, 0x52E8}, {0, 2, 13, 0x52D0},
		// 1726-1729
		{0, 2, 2, 0xA950}, {3, 1, 22, 0xD4A8}, {0, 2, 10, 0xB4A0}, {7, 1, 29, 0xB550},
		// 1730-1733
		{0, 2, 17, 0xAD50}, {0, 2, 7, 0x55A0}, {5, 1, 27, 0xA5D0}, {0, 2, 14, 0xA5B0},
		// 1734-1737
		{0, 2, 4, 0x52B0}, {4, 1, 24, 0xA8B8}, {0, 2, 12, 0x6930}, {9, 1, 31, 0x7298},
		// 1738-1741
		{0, 2, 19, 0x6AA0}, {0, 2, 8, 0xAD50}, {6, 1, 29, 0x4DA8}, {0, 2, 16, 0x4B60},
		// 1742-1745
		{0, 2, 5, 0xA570}, {4, 1, 26, 0x5170}, {0, 2, 13, 0xD160}, {0, 2, 1, 0xE930},
		// 1746-1749
		{3, 1, 22, 0x6A90}, {0, 2, 9, 0xDAA0}, {7, 1, 30, 0x5B50}, {0, 2, 17, 0x56D0},
		// 1750-1753
		{0, 2, 7, 0x4AE0}, {5, 1, 27, 0xA4E8}, {0, 2, 15, 0xA2D0}, {0, 2, 3, 0xD150},
		// 1754-1757
		{4, 1, 23, 0xD528}, {0, 2, 11, 0xB520}, {9, 1, 31, 0xD690}, {0, 2, 18, 0xADA0},
		// 1758-1761
		{0, 2, 8, 0x55D0}, {6, 1, 29, 0x4AD8}, {0, 2, 17, 0x49B0}, {0, 2, 5, 0xA2B0},
		// 1762-1765
		{5, 1, 25, 0xB158}, {0, 2, 13, 0xAA50}, {0, 2, 2, 0xB520}, {2, 1, 21, 0xB590},
		// 1766-1769
		{0, 2, 9, 0xAD60}, {7, 1, 30, 0x55B0}, {0, 2, 18, 0x5370}, {0, 2, 7, 0x4570},
		// 1770-1773
		{5, 1, 27, 0x62B8}, {0, 2, 15, 0x52B0}, {0, 2, 4, 0x6A50}, {3, 1, 23, 0x6CA8},
		// 1774-1777
		{0, 2, 11, 0x5AA0}, {10, 1, 31, 0xAB50}, {0, 2, 19, 0xA6D0}, {0, 2, 8, 0x52E0},
		// 1778-1781
		{6, 1, 28, 0xC570}, {0, 2, 16, 0xA960}, {0, 2, 5, 0xD4A0}, {5, 1, 24, 0xE950},
		// 1782-1785
		{0, 2, 12, 0xD550}, {0, 2, 2, 0x5AA0}, {3, 1, 22, 0xAB50}, {0, 2, 9, 0xA6D0},
		// 1786-1789
		{7, 1, 30, 0x4AE8}, {0, 2, 18, 0x52B0}, {0, 2, 7, 0xA8D0}, {6, 1, 26, 0xD4A8},
		// 1790-1793
		{0, 2, 14, 0xB2A0}, {0, 2, 3, 0xB550}, {4, 1, 24, 0x56A8}, {0, 2, 11, 0x4DA0},
		// 1794-1797
		{12, 1, 31, 0x95D0}, {0, 2, 19, 0x9570}, {0, 2, 9, 0x51B0}, {6, 1, 28, 0xA8B8},
		// 1798-1801
		{0, 2, 16, 0x68B0}, {0, 2, 5, 0x6A90}, {5, 1, 25, 0xB550}, {0, 2, 13, 0x6B50},
		// 1802-1805
		{0, 2, 3, 0x2BA0}, {2, 1, 23, 0x95B0}, {0, 2, 11, 0xA570}, {7, 1, 31, 0x5170},
		// 1806-1809
		{0, 2, 18, 0xD160}, {0, 2, 7, 0xE4A0}, {5, 1, 27, 0xEA90}, {0, 2, 14, 0xDA90},
		// 1810-1813
		{0, 2, 4, 0x5B50}, {3, 1, 25, 0x2B68}, {0, 2, 13, 0x2AE0}, {11, 2, 1, 0xA2E8},
		// 1814-1817
		{0, 2, 20, 0xA2D0}, {0, 2, 9, 0xD150}, {6, 1, 29, 0xD4A8}, {0, 2, 16, 0xB520},
		// 1818-1821
		{0, 2, 5, 0xB690}, {4, 1, 26, 0x56D0}, {0, 2, 14, 0x55D0}, {0, 2, 3, 0x29D0},
		// 1822-1825
		{3, 1, 23, 0xA2D8}, {0, 2, 11, 0xA2B0}, {7, 1, 31, 0xA958}, {0, 2, 18, 0xA950},
		// 1826-1829
		{0, 2, 7, 0xB4A0}, {6, 1, 27, 0xB550}, {0, 2, 15, 0xAD50}, {0, 2, 4, 0x55B0},
		// 1830-1833
		{4, 1, 25, 0x25B8}, {0, 2, 13, 0x4570}, {9, 2, 2, 0x52B8}, {0, 2, 20, 0x52B0},
		// 1834-1837
		{0, 2, 9, 0x6950}, {6, 1, 29, 0x6CA8}, {0, 2, 17, 0x5AA0}, {0, 2, 5, 0xAB50},
		// 1838-1841
		{4, 1, 26, 0x5368}, {0, 2, 14, 0x4AE0}, {0, 2, 3, 0xA570}, {3, 1, 23, 0x52A8},
		// 1842-1845
		{0, 2, 10, 0xD2A0}, {7, 1, 30, 0xE950}, {0, 2, 18, 0xD550}, {0, 2, 7, 0x5AA0},
		// 1846-1849
		{5, 1, 27, 0xAAD0}, {0, 2, 15, 0x95D0}, {0, 2, 5, 0x4AE0}, {4, 1, 24, 0xA558},
		// 1850-1853
		{0, 2, 12, 0xA4D0}, {8, 2, 1, 0xD258}, {0, 2, 20, 0xB290}, {0, 2, 8, 0xB550},
		// 1854-1857
		{7, 1, 29, 0x56A8}, {0, 2, 17, 0x2DA0}, {0, 2, 6, 0x95D0}, {5, 1, 26, 0x4AB8},
		// 1858-1861
		{0, 2, 14, 0x49B0}, {0, 2, 3, 0xA4B0}, {3, 1, 23, 0xB258}, {0, 2, 10, 0x6A90},
		// 1862-1865
		{8, 1, 30, 0xAD48}, {0, 2, 18, 0x6B50}, {0, 2, 8, 0x2B60}, {5, 1, 27, 0x95B0},
		// 1866-1869
		{0, 2, 15, 0x9370}, {0, 2, 5, 0x4970}, {4, 1, 25, 0x64B0}, {0, 2, 11, 0xE4A0},
		// 1870-1873
		{10, 1, 31, 0xEA50}, {0, 2, 19, 0xDA90}, {0, 2, 9, 0x5AD0}, {6, 1, 29, 0x2B68},
		// 1874-1877
		{0, 2, 17, 0x2AE0}, {0, 2, 6, 0x92E0}, {5, 1, 26, 0xC968}, {0, 2, 13, 0xC950},
		// 1878-1881
		{0, 2, 2, 0xD4A0}, {3, 1, 22, 0xDA50}, {0, 2, 10, 0xB690}, {7, 1, 30, 0x56D0},
		// 1882-1885
		{0, 2, 18, 0x55B0}, {0, 2, 8, 0x25D0}, {5, 1, 28, 0x92D8}, {0, 2, 15, 0x92B0},
		// 1886-1889
		{0, 2, 4, 0xA950}, {4, 1, 24, 0xD4A8}, {0, 2, 12, 0xB4A0}, {12, 1, 31, 0xB550},
		// 1890-1893
		{0, 2, 19, 0xAD50}, {0, 2, 9, 0x55B0}, {6, 1, 30, 0x25B8}, {0, 2, 17, 0x2570},
		// 1894-1897
		{0, 2, 6, 0x52B0}, {5, 1, 26, 0xA958}, {0, 2, 14, 0x6950}, {0, 2, 2, 0x6AA0},
		// 1898-1901
		{3, 1, 22, 0xAD50}, {0, 2, 10, 0xAB50}, {8, 1, 31, 0x4B68}, {0, 2, 19, 0x4AE0},
		// 1902-1905
		{0, 2, 8, 0xA570}, {5, 1, 29, 0x5268}, {0, 2, 16, 0xD260}, {0, 2, 4, 0xD950},
		// 1906-1909
		{4, 1, 25, 0x6AA8}, {0, 2, 13, 0x56A0}, {0, 2, 2, 0x9AD0}, {2, 1, 22, 0x4AE8},
		// 1910-1913
		{0, 2, 10, 0x4AE0}, {6, 1, 30, 0xA4D8}, {0, 2, 18, 0xA4D0}, {0, 2, 6, 0xD250},
		// 1914-1917
		{5, 1, 26, 0xD948}, {0, 2, 14, 0xB550}, {0, 2, 4, 0x56A0}, {2, 1, 23, 0x96D0},
		// 1918-1921
		{0, 2, 11, 0x95D0}, {7, 2, 1, 0x4AD8}, {0, 2, 20, 0x49B0}, {0, 2, 8, 0xA4B0},
		// 1922-1925
		{5, 1, 28, 0xB258}, {0, 2, 16, 0x6A90}, {0, 2, 5, 0xAD40}, {4, 1, 24, 0xB5A8},
		// 1926-1929
		{0, 2, 13, 0x2B60}, {0, 2, 2, 0x95B0}, {2, 1, 23, 0x49B8}, {0, 2, 10, 0x4970},
		// 1930-1933
		{6, 1, 30, 0x64B0}, {0, 2, 17, 0xE4A0}, {0, 2, 6, 0xEA50}, {5, 1, 26, 0x6D48},
		// 1934-1937
		{0, 2, 14, 0x5B50}, {0, 2, 4, 0x2B60}, {3, 1, 24, 0x9570}, {0, 2, 11, 0x92E0},
		// 1938-1941
		{7, 1, 31, 0xC968}, {0, 2, 19, 0xC950}, {0, 2, 8, 0xD4A0}, {6, 1, 27, 0xDA50},
		// 1942-1945
		{0, 2, 15, 0xB690}, {0, 2, 5, 0x56D0}, {4, 1, 26, 0x2AD8}, {0, 2, 13, 0x25D0},
		// 1946-1949
		{0, 2, 2, 0x92D0}, {2, 1, 22, 0xC958}, {0, 2, 10, 0xA950}, {7, 1, 29, 0xD4A8},
		// 1950-1953
		{0, 2, 17, 0xB4A0}, {0, 2, 6, 0xB550}, {5, 1, 27, 0x56A8}, {0, 2, 14, 0x4DB0},
		// 1954-1957
		{0, 2, 4, 0x25B0}, {3, 1, 24, 0x92B8}, {0, 2, 12, 0x52B0}, {8, 1, 31, 0xA958},
		// 1958-1961
		{0, 2, 19, 0x6950}, {0, 2, 8, 0x6AA0}, {6, 1, 28, 0xAD50}, {0, 2, 15, 0xAB50},
		// 1962-1965
		{0, 2, 5, 0x4B60}, {4, 1, 25, 0xA570}, {0, 2, 13, 0xA570}, {0, 2, 2, 0x5270},
		// 1966-1969
		{3, 1, 22, 0x6930}, {0, 2, 9, 0xD950}, {7, 1, 30, 0x6AA8}, {0, 2, 17, 0x56A0},
		// 1970-1973
		{0, 2, 6, 0x9AD0}, {5, 1, 27, 0x4AE8}, {0, 2, 15, 0x4AE0}, {0, 2, 3, 0xA4E0},
		// 1974-1977
		{4, 1, 23, 0xD268}, {0, 2, 11, 0xD250}, {8, 1, 31, 0xD548}, {0, 2, 18, 0xB540},
		// 1978-1981
		{0, 2, 7, 0xD6A0}, {6, 1, 28, 0x96D0}, {0, 2, 16, 0x95B0}, {0, 2, 5, 0x49B0},
		// 1982-1985
		{4, 1, 25, 0xA4D8}, {0, 2, 13, 0xA4B0}, {10, 2, 2, 0xB258}, {0, 2, 20, 0x6A50},
		// 1986-1989
		{0, 2, 9, 0x6D40}, {6, 1, 29, 0xB5A8}, {0, 2, 18, 0x2B60}, {0, 2, 6, 0x95B0},
		// 1990-1993
		{5, 1, 27, 0x49B8}, {0, 2, 15, 0x4970}, {0, 2, 4, 0x64B0}, {3, 1, 23, 0x6A50},
		// 1994-1997
		{0, 2, 10, 0xEA50}, {8, 1, 31, 0x6D48}, {0, 2, 19, 0x5AD0}, {0, 2, 8, 0x2B60},
		// 1998-2001
		{5, 1, 28, 0x9370}, {0, 2, 16, 0x92E0}, {0, 2, 5, 0xC960}, {4, 1, 24, 0xE4A8},
		// 2002-2005
		{0, 2, 12, 0xD4A0}, {0, 2, 1, 0xDA50}, {2, 1, 22, 0x5AA8}, {0, 2, 9, 0x56C0},
		// 2006-2009
		{7, 1, 29, 0xAAD8}, {0, 2, 18, 0x25D0}, {0, 2, 7, 0x92D0}, {5, 1, 26, 0xC958},
		// 2010-2013
		{0, 2, 14, 0xA950}, {0, 2, 3, 0xB4A0}, {3, 1, 23, 0xBA50}, {0, 2, 10, 0xB550},
		// 2014-2017
		{9, 1, 31, 0x55A8}, {0, 2, 19, 0x4BA0}, {0, 2, 8, 0xA5B0}, {5, 1, 28, 0x92B8},
		// 2018-2021
		{0, 2, 16, 0x52B0}, {0, 2, 5, 0xA950}, {4, 1, 25, 0xB4A8}, {0, 2, 12, 0x6AA0},
		// 2022-2025
		{0, 2, 1, 0xAD50}, {2, 1, 22, 0x55A8}, {0, 2, 10, 0x4B60}, {6, 1, 29, 0xA570},
		// 2026-2029
		{0, 2, 17, 0xA570}, {0, 2, 7, 0x5270}, {5, 1, 27, 0x6930}, {0, 2, 13, 0xD930},
		// 2030-2033
		{0, 2, 3, 0x5AA0}, {3, 1, 23, 0xAB50}, {0, 2, 11, 0x96D0}, {11, 1, 31, 0x4AE8},
		// 2034-2037
		{0, 2, 19, 0x4AE0}, {0, 2, 8, 0xA4D0}, {6, 1, 28, 0xD268}, {0, 2, 15, 0xD250},
		// 2038-2041
		{0, 2, 4, 0xD520}, {5, 1, 24, 0xDAA0}, {0, 2, 12, 0xB6A0}, {0, 2, 1, 0x96D0},
		// 2042-2045
		{2, 1, 22, 0x4AD8}, {0, 2, 10, 0x49B0}, {7, 1, 30, 0xA4B8}, {0, 2, 17, 0xA4B0},
		// 2046-2049
		{0, 2, 6, 0xB250}, {5, 1, 26, 0xB528}, {0, 2, 14, 0x6D40}, {0, 2, 2, 0xADA0},
		// 2050-2050
		{3, 1, 23, 0x95B0},
	},
}

// japaneseYears covers lunar years 1960-2049 reckoned at UTC+9.
var japaneseYears = lunarTable{
	firstYear: 1960,
	rows: []lunarYearRow{
		// 1960-1963
		{6, 1, 28, 0xAD50}, {0, 2, 15, 0xAB50}, {0, 2, 5, 0x4B60}, {4, 1, 25, 0xA570},
		// 1964-1967
		{0, 2, 13, 0xA570}, {0, 2, 2, 0x5270}, {3, 1, 22, 0x6930}, {0, 2, 9, 0xD950},
		// 1968-1971
		{7, 1, 30, 0x6AA8}, {0, 2, 17, 0x56A0}, {0, 2, 6, 0x9AD0}, {5, 1, 27, 0x4AE8},
		// 1972-1975
		{0, 2, 15, 0x4AE0}, {0, 2, 3, 0xA4E0}, {4, 1, 23, 0xD268}, {0, 2, 11, 0xD250},
		// 1976-1979
		{8, 1, 31, 0xD548}, {0, 2, 18, 0xB540}, {0, 2, 7, 0xD6A0}, {6, 1, 28, 0x96D0},
		// 1980-1983
		{0, 2, 16, 0x95B0}, {0, 2, 5, 0x49B0}, {4, 1, 25, 0xA4D8}, {0, 2, 13, 0xA4B0},
		// 1984-1987
		{10, 2, 2, 0xB258}, {0, 2, 20, 0x6A50}, {0, 2, 9, 0x6D40}, {6, 1, 29, 0xB5A8},
		// 1988-1991
		{0, 2, 18, 0x2B60}, {0, 2, 6, 0x95B0}, {5, 1, 27, 0x49B8}, {0, 2, 15, 0x4970},
		// 1992-1995
		{0, 2, 4, 0x64B0}, {3, 1, 23, 0x6A50}, {0, 2, 10, 0xEA50}, {8, 1, 31, 0x6D48},
		// 1996-1999
		{0, 2, 19, 0x5AD0}, {0, 2, 8, 0x2B60}, {5, 1, 28, 0x9370}, {0, 2, 16, 0x92E0},
		// 2000-2003
		{0, 2, 5, 0xC960}, {4, 1, 24, 0xE4A8}, {0, 2, 12, 0xD4A0}, {0, 2, 1, 0xDA50},
		// 2004-2007
		{2, 1, 22, 0x5AA8}, {0, 2, 9, 0x56C0}, {7, 1, 29, 0xAAD8}, {0, 2, 18, 0x25D0},
		// 2008-2011
		{0, 2, 7, 0x92D0}, {5, 1, 26, 0xC958}, {0, 2, 14, 0xA950}, {0, 2, 3, 0xB4A0},
		// 2012-2015
		{3, 1, 23, 0xBA50}, {0, 2, 10, 0xB550}, {9, 1, 31, 0x55A8}, {0, 2, 19, 0x4BA0},
		// 2016-2019
		{0, 2, 8, 0xA5B0}, {5, 1, 28, 0x92B8}, {0, 2, 16, 0x52B0}, {0, 2, 5, 0xA950},
		// 2020-2023
		{4, 1, 25, 0xB4A8}, {0, 2, 12, 0x6AA0}, {0, 2, 1, 0xAD50}, {2, 1, 22, 0x55A8},
		// 2024-2027
		{0, 2, 10, 0x4B60}, {6, 1, 29, 0xA570}, {0, 2, 17, 0xA570}, {0, 2, 7, 0x5270},
		// 2028-2031
		{5, 1, 27, 0x6930}, {0, 2, 13, 0xD930}, {0, 2, 3, 0x5AA0}, {3, 1, 23, 0xAB50},
		// 2032-2035
		{0, 2, 11, 0x96D0}, {11, 1, 31, 0x4AE8}, {0, 2, 19, 0x4AE0}, {0, 2, 8, 0xA4D0},
		// 2036-2039
		{6, 1, 28, 0xD268}, {0, 2, 15, 0xD250}, {0, 2, 4, 0xD520}, {5, 1, 24, 0xDAA0},
		// 2040-2043
		{0, 2, 12, 0xB6A0}, {0, 2, 1, 0x96D0}, {2, 1, 22, 0x4AD8}, {0, 2, 10, 0x49B0},
		// 2044-2047
		{7, 1, 30, 0xA4B8}, {0, 2, 17, 0xA4B0}, {0, 2, 6, 0xB250}, {5, 1, 26, 0xB528},
		// 2048-2049
		{0, 2, 14, 0x6D40}, {0, 2, 2, 0xADA0},
	},
}
