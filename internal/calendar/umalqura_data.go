package calendar

// umAlQuraYears holds one row per Hijri year from 1318 to 1500: the Gregorian
// date of 1 Muharram and a mask whose bit i is set when month i+1 has 30 days.
var umAlQuraYears = [...]umAlQuraRow{
	// 1318-1320
	{0x56D, 1900, 4, 30}, {0xB5A, 1901, 4, 20}, {0x752, 1902, 4, 10},
	// 1321-1323
	{0xF25, 1903, 3, 30}, {0xE8A, 1904, 3, 19}, {0xD16, 1905, 3, 8},
	// 1324-1326
	{0xA56, 1906, 2, 25}, {0xAB5, 1907, 2, 14}, {0x6B4, 1908, 2, 4},
	// 1327-1329
	{0xDA9, 1909, 1, 23}, {0xB92, 1910, 1, 13}, {0xB25, 1911, 1, 2},
	// 1330-1332
	{0x64B, 1911, 12, 22}, {0xA9B, 1912, 12, 10}, {0x35A, 1913, 11, 30},
	// 1333-1335
	{0x6D9, 1914, 11, 19}, {0x5D4, 1915, 11, 9}, {0xDA5, 1916, 10, 28},
	// 1336-1338
	{0xD4A, 1917, 10, 18}, {0xA95, 1918, 10, 7}, {0x536, 1919, 9, 26},
	// 1339-1341
	{0x975, 1920, 9, 14}, {0x2F4, 1921, 9, 4}, {0x6E9, 1922, 8, 24},
	// 1342-1344
	{0x6D4, 1923, 8, 14}, {0x6A9, 1924, 8, 2}, {0x535, 1925, 7, 22},
	// 1345-1347
	{0x25D, 1926, 7, 11}, {0x4BD, 1927, 6, 30}, {0x9BA, 1928, 6, 19},
	// 1348-1350
	{0x3B4, 1929, 6, 9}, {0xB69, 1930, 5, 29}, {0xB2A, 1931, 5, 19},
	// 1351-1353
	{0xA55, 1932, 5, 7}, {0x4AD, 1933, 4, 26}, {0xA5D, 1934, 4, 15},
	// 1354-1356
	{0x2DA, 1935, 4, 5}, {0x6D9, 1936, 3, 24}, {0xEAA, 1937, 3, 14},
	// 1357-1359
	{0xE94, 1938, 3, 4}, {0xD2A, 1939, 2, 21}, {0xC56, 1940, 2, 10},
	// 1360-1362
	{0x4AE, 1941, 1, 29}, {0xA6D, 1942, 1, 18}, {0x56A, 1943, 1, 8},
	// 1363-1365
	{0xD55, 1943, 12, 28}, {0xD4A, 1944, 12, 17}, {0xA93, 1945, 12, 6},
	// 1366-1368
	{0x52B, 1946, 11, 25}, {0xA5B, 1947, 11, 14}, {0x53A, 1948, 11, 3},
	// 1369-1371
	{0x6B5, 1949, 10, 23}, {0xEA9, 1950, 10, 13}, {0xD52, 1951, 10, 3},
	// 1372-1374
	{0xD29, 1952, 9, 21}, {0xA55, 1953, 9, 10}, {0x4AD, 1954, 8, 30},
	// 1375-1377
	{0x56D, 1955, 8, 19}, {0xAEA, 1956, 8, 8}, {0x6E4, 1957, 7, 29},
	// 1378-1380
	{0xED1, 1958, 7, 18}, {0xDA2, 1959, 7, 8}, {0xAAA, 1960, 6, 26},
	// 1381-1383
	{0x95A, 1961, 6, 15}, {0x2DA, 1962, 6, 4}, {0x5B9, 1963, 5, 24},
	// 1384-1386
	{0xBB2, 1964, 5, 13}, {0x764, 1965, 5, 3}, {0x6C9, 1966, 4, 22},
	// 1387-1389
	{0x555, 1967, 4, 11}, {0x2AB, 1968, 3, 30}, {0x4DB, 1969, 3, 19},
	// 1390-1392
	{0xABA, 1970, 3, 9}, {0x5B4, 1971, 2, 27}, {0xDA9, 1972, 2, 16},
	// 1393-1395
	{0xD52, 1973, 2, 5}, {0xAA5, 1974, 1, 25}, {0x92D, 1975, 1, 14},
	// 1396-1398
	{0x26D, 1976, 1, 3}, {0x8ED, 1976, 12, 22}, {0x2DA, 1977, 12, 12},
	// 1399-1401
	{0xAD5, 1978, 12, 1}, {0xAA5, 1979, 11, 21}, {0xA4B, 1980, 11, 9},
	// 1402-1404
	{0x497, 1981, 10, 29}, {0x937, 1982, 10, 18}, {0x2B6, 1983, 10, 8},
	// 1405-1407
	{0x975, 1984, 9, 26}, {0xD69, 1985, 9, 16}, {0xD52, 1986, 9, 6},
	// 1408-1410
	{0xC95, 1987, 8, 26}, {0x92B, 1988, 8, 14}, {0x25B, 1989, 8, 3},
	// 1411-1413
	{0x4DB, 1990, 7, 23}, {0x9D5, 1991, 7, 13}, {0x5D2, 1992, 7, 2},
	// 1414-1416
	{0xDA5, 1993, 6, 21}, {0xD4A, 1994, 6, 11}, {0xA95, 1995, 5, 31},
	// 1417-1419
	{0x54D, 1996, 5, 19}, {0xAAD, 1997, 5, 8}, {0x3AA, 1998, 4, 28},
	// 1420-1422
	{0xBD2, 1999, 4, 17}, {0xBC4, 2000, 4, 6}, {0xB89, 2001, 3, 26},
	// 1423-1425
	{0xA95, 2002, 3, 15}, {0x52D, 2003, 3, 4}, {0x5AD, 2004, 2, 21},
	// 1426-1428
	{0xB6A, 2005, 2, 10}, {0x6D4, 2006, 1, 31}, {0xDC9, 2007, 1, 20},
	// 1429-1431
	{0xD92, 2008, 1, 10}, {0xAA6, 2008, 12, 29}, {0x956, 2009, 12, 18},
	// 1432-1434
	{0x2AE, 2010, 12, 7}, {0x56D, 2011, 11, 26}, {0x36A, 2012, 11, 15},
	// 1435-1437
	{0xB55, 2013, 11, 4}, {0xAAA, 2014, 10, 25}, {0x94D, 2015, 10, 14},
	// 1438-1440
	{0x49D, 2016, 10, 2}, {0x95D, 2017, 9, 21}, {0x2BA, 2018, 9, 11},
	// 1441-1443
	{0x5B5, 2019, 8, 31}, {0x5AA, 2020, 8, 20}, {0xD55, 2021, 8, 9},
	// 1444-1446
	{0xA9A, 2022, 7, 30}, {0x92E, 2023, 7, 19}, {0x26E, 2024, 7, 7},
	// 1447-1449
	{0x55D, 2025, 6, 26}, {0xADA, 2026, 6, 16}, {0x6D4, 2027, 6, 6},
	// 1450-1452
	{0x6A5, 2028, 5, 25}, {0xB27, 2029, 5, 14}, {0xA4D, 2030, 5, 4},
	// 1453-1455
	{0x4AD, 2031, 4, 23}, {0x56D, 2032, 4, 11}, {0xB5A, 2033, 4, 1},
	// 1456-1458
	{0x754, 2034, 3, 22}, {0xF49, 2035, 3, 11}, {0xE92, 2036, 2, 29},
	// 1459-1461
	{0xD26, 2037, 2, 17}, {0xA56, 2038, 2, 6}, {0x356, 2039, 1, 26},
	// 1462-1464
	{0x6B5, 2040, 1, 15}, {0xBAA, 2041, 1, 4}, {0xB92, 2041, 12, 25},
	// 1465-1467
	{0xB25, 2042, 12, 14}, {0x68B, 2043, 12, 3}, {0xA9B, 2044, 11, 21},
	// 1468-1470
	{0x55A, 2045, 11, 11}, {0xADA, 2046, 10, 31}, {0x5B4, 2047, 10, 21},
	// 1471-1473
	{0xDA9, 2048, 10, 9}, {0xB52, 2049, 9, 29}, {0xA9A, 2050, 9, 18},
	// 1474-1476
	{0x536, 2051, 9, 7}, {0x276, 2052, 8, 26}, {0x575, 2053, 8, 15},
	// 1477-1479
	{0xAF2, 2054, 8, 5}, {0x6D4, 2055, 7, 26}, {0x6A9, 2056, 7, 14},
	// 1480-1482
	{0x555, 2057, 7, 3}, {0x2AD, 2058, 6, 22}, {0x4BD, 2059, 6, 11},
	// 1483-1485
	{0x9BA, 2060, 5, 31}, {0x574, 2061, 5, 21}, {0xB69, 2062, 5, 10},
	// 1486-1488
	{0xB52, 2063, 4, 30}, {0xA95, 2064, 4, 18}, {0x52D, 2065, 4, 7},
	// 1489-1491
	{0xA5D, 2066, 3, 27}, {0x4DA, 2067, 3, 17}, {0xAD9, 2068, 3, 5},
	// 1492-1494
	{0x6B2, 2069, 2, 23}, {0xE95, 2070, 2, 12}, {0xE2A, 2071, 2, 2},
	// 1495-1497
	{0xC96, 2072, 1, 22}, {0x92E, 2073, 1, 10}, {0xAAD, 2073, 12, 30},
	// 1498-1500
	{0x56A, 2074, 12, 20}, {0xD65, 2075, 12, 9}, {0xD4A, 2076, 11, 28},
}
