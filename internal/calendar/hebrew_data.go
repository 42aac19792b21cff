package calendar

// hebrewYears holds one row per Hebrew year from 5342 to 5999: the Gregorian
// month and day of 1 Tishri (in Gregorian year hebrewYear-3761) and the year
// type, 1-3 for deficient/regular/complete common years and 4-6 for the same
// in leap years.
var hebrewYears = [...]hebrewRow{
	// 5342-5347
	{9, 8, 5}, {9, 27, 3}, {9, 17, 3}, {9, 6, 4}, {9, 24, 2}, {9, 13, 6},
	// 5348-5353
	{10, 3, 3}, {9, 22, 2}, {9, 11, 4}, {9, 29, 3}, {9, 19, 2}, {9, 7, 6},
	// 5354-5359
	{9, 27, 1}, {9, 15, 2}, {9, 4, 6}, {9, 23, 3}, {9, 13, 4}, {10, 1, 2},
	// 5360-5365
	{9, 20, 3}, {9, 9, 4}, {9, 27, 2}, {9, 16, 3}, {9, 6, 6}, {9, 25, 1},
	// 5366-5371
	{9, 13, 5}, {10, 2, 3}, {9, 22, 3}, {9, 11, 4}, {9, 29, 2}, {9, 18, 3},
	// 5372-5377
	{9, 8, 6}, {9, 27, 2}, {9, 16, 1}, {9, 4, 6}, {9, 24, 2}, {9, 12, 4},
	// 5378-5383
	{9, 30, 3}, {9, 20, 2}, {9, 9, 6}, {9, 28, 1}, {9, 16, 2}, {9, 5, 6},
	// 5384-5389
	{9, 25, 3}, {9, 14, 4}, {10, 2, 2}, {9, 21, 3}, {9, 11, 4}, {9, 28, 3},
	// 5390-5395
	{9, 18, 2}, {9, 7, 6}, {9, 27, 3}, {9, 16, 2}, {9, 5, 4}, {9, 23, 3},
	// 5396-5401
	{9, 13, 4}, {9, 30, 2}, {9, 19, 3}, {9, 9, 6}, {9, 29, 2}, {9, 17, 1},
	// 5402-5407
	{9, 5, 6}, {9, 25, 2}, {9, 14, 4}, {10, 1, 3}, {9, 21, 2}, {9, 10, 6},
	// 5408-5413
	{9, 30, 1}, {9, 17, 3}, {9, 7, 5}, {9, 26, 3}, {9, 16, 1}, {9, 3, 5},
	// 5414-5419
	{9, 22, 3}, {9, 12, 6}, {10, 2, 1}, {9, 19, 2}, {9, 8, 6}, {9, 28, 3},
	// 5420-5425
	{9, 18, 2}, {9, 6, 4}, {9, 24, 3}, {9, 14, 4}, {10, 2, 2}, {9, 20, 3},
	// 5426-5431
	{9, 10, 6}, {9, 30, 2}, {9, 19, 1}, {9, 6, 6}, {9, 26, 2}, {9, 15, 3},
	// 5432-5437
	{9, 5, 4}, {9, 22, 2}, {9, 11, 6}, {10, 1, 3}, {9, 21, 1}, {9, 8, 5},
	// 5438-5443
	{9, 27, 3}, {9, 17, 3}, {9, 7, 4}, {9, 24, 2}, {9, 13, 6}, {10, 3, 1},
	// 5444-5449
	{9, 21, 2}, {9, 9, 6}, {9, 29, 3}, {9, 19, 2}, {9, 8, 4}, {9, 25, 3},
	// 5450-5455
	{9, 15, 2}, {9, 4, 6}, {9, 24, 1}, {9, 11, 6}, {10, 1, 2}, {9, 20, 3},
	// 5456-5461
	{9, 10, 4}, {9, 27, 2}, {9, 16, 3}, {9, 6, 4}, {9, 24, 3}, {9, 14, 5},
	// 5462-5467
	{10, 3, 3}, {9, 23, 1}, {9, 11, 5}, {9, 29, 3}, {9, 19, 3}, {9, 9, 4},
	// 5468-5473
	{9, 27, 2}, {9, 15, 3}, {9, 5, 6}, {9, 25, 2}, {9, 14, 4}, {10, 1, 3},
	// 5474-5479
	{9, 21, 2}, {9, 10, 4}, {9, 28, 3}, {9, 17, 2}, {9, 6, 6}, {9, 26, 1},
	// 5480-5485
	{9, 14, 6}, {10, 3, 2}, {9, 22, 3}, {9, 12, 4}, {9, 30, 2}, {9, 18, 3},
	// 5486-5491
	{9, 8, 4}, {9, 26, 3}, {9, 16, 2}, {9, 4, 6}, {9, 24, 1}, {9, 12, 5},
	// 5492-5497
	{10, 1, 3}, {9, 20, 3}, {9, 10, 4}, {9, 28, 2}, {9, 17, 3}, {9, 6, 6},
	// 5498-5503
	{9, 26, 2}, {9, 15, 4}, {10, 3, 3}, {9, 22, 2}, {9, 11, 4}, {9, 29, 3},
	// 5504-5509
	{9, 19, 2}, {9, 7, 6}, {9, 27, 1}, {9, 15, 3}, {9, 5, 5}, {9, 23, 3},
	// 5510-5515
	{9, 13, 4}, {10, 1, 2}, {9, 20, 3}, {9, 9, 6}, {9, 29, 1}, {9, 17, 2},
	// 5516-5521
	{9, 6, 6}, {9, 25, 3}, {9, 15, 4}, {10, 3, 2}, {9, 22, 3}, {9, 11, 4},
	// 5522-5527
	{9, 29, 2}, {9, 18, 3}, {9, 8, 6}, {9, 27, 2}, {9, 16, 1}, {9, 4, 6},
	// 5528-5533
	{9, 24, 2}, {9, 12, 6}, {10, 2, 1}, {9, 20, 2}, {9, 9, 6}, {9, 28, 3},
	// 5534-5539
	{9, 18, 1}, {9, 6, 5}, {9, 25, 3}, {9, 14, 4}, {10, 2, 3}, {9, 22, 2},
	// 5540-5545
	{9, 11, 6}, {9, 30, 3}, {9, 20, 2}, {9, 9, 4}, {9, 27, 3}, {9, 16, 2},
	// 5546-5551
	{9, 5, 4}, {9, 23, 3}, {9, 13, 6}, {10, 2, 2}, {9, 21, 1}, {9, 9, 6},
	// 5552-5557
	{9, 29, 2}, {9, 17, 3}, {9, 7, 4}, {9, 25, 2}, {9, 14, 6}, {10, 3, 1},
	// 5558-5563
	{9, 21, 3}, {9, 11, 5}, {9, 30, 3}, {9, 20, 1}, {9, 8, 5}, {9, 27, 3},
	// 5564-5569
	{9, 17, 3}, {9, 6, 4}, {9, 24, 2}, {9, 13, 6}, {10, 3, 3}, {9, 22, 2},
	// 5570-5575
	{9, 11, 4}, {9, 29, 3}, {9, 19, 2}, {9, 7, 4}, {9, 25, 3}, {9, 15, 6},
	// 5576-5581
	{10, 5, 2}, {9, 23, 1}, {9, 11, 6}, {10, 1, 2}, {9, 20, 3}, {9, 9, 4},
	// 5582-5587
	{9, 27, 2}, {9, 16, 3}, {9, 6, 4}, {9, 23, 3}, {9, 13, 5}, {10, 2, 3},
	// 5588-5593
	{9, 22, 1}, {9, 9, 5}, {9, 28, 3}, {9, 18, 3}, {9, 8, 4}, {9, 25, 2},
	// 5594-5599
	{9, 14, 6}, {10, 4, 3}, {9, 24, 2}, {9, 12, 4}, {9, 30, 3}, {9, 20, 2},
	// 5600-5605
	{9, 9, 6}, {9, 28, 1}, {9, 16, 2}, {9, 5, 6}, {9, 25, 3}, {9, 14, 4},
	// 5606-5611
	{10, 2, 2}, {9, 21, 3}, {9, 11, 4}, {9, 28, 2}, {9, 17, 3}, {9, 7, 6},
	// 5612-5617
	{9, 27, 1}, {9, 14, 5}, {10, 3, 3}, {9, 23, 3}, {9, 13, 4}, {9, 30, 2},
	// 5618-5623
	{9, 19, 3}, {9, 9, 6}, {9, 29, 2}, {9, 17, 1}, {9, 5, 6}, {9, 25, 2},
	// 5624-5629
	{9, 14, 4}, {10, 1, 3}, {9, 21, 2}, {9, 10, 6}, {9, 30, 1}, {9, 17, 2},
	// 5630-5635
	{9, 6, 6}, {9, 26, 3}, {9, 16, 4}, {10, 3, 2}, {9, 22, 3}, {9, 12, 4},
	// 5636-5641
	{9, 30, 3}, {9, 19, 2}, {9, 8, 6}, {9, 28, 3}, {9, 18, 2}, {9, 6, 4},
	// 5642-5647
	{9, 24, 3}, {9, 14, 4}, {10, 2, 2}, {9, 20, 3}, {9, 10, 6}, {9, 30, 2},
	// 5648-5653
	{9, 19, 1}, {9, 6, 6}, {9, 26, 2}, {9, 15, 4}, {10, 3, 3}, {9, 22, 2},
	// 5654-5659
	{9, 11, 6}, {10, 1, 1}, {9, 19, 3}, {9, 8, 5}, {9, 27, 3}, {9, 17, 1},
	// 5660-5665
	{9, 5, 5}, {9, 24, 3}, {9, 14, 4}, {10, 2, 3}, {9, 22, 2}, {9, 10, 6},
	// 5666-5671
	{9, 30, 3}, {9, 20, 2}, {9, 9, 4}, {9, 26, 3}, {9, 16, 4}, {10, 4, 2},
	// 5672-5677
	{9, 23, 3}, {9, 12, 6}, {10, 2, 2}, {9, 21, 1}, {9, 9, 6}, {9, 28, 2},
	// 5678-5683
	{9, 17, 3}, {9, 7, 4}, {9, 25, 2}, {9, 13, 6}, {10, 3, 3}, {9, 23, 1},
	// 5684-5689
	{9, 11, 5}, {9, 29, 3}, {9, 19, 3}, {9, 9, 4}, {9, 27, 2}, {9, 15, 6},
	// 5690-5695
	{10, 5, 1}, {9, 23, 2}, {9, 12, 6}, {10, 1, 3}, {9, 21, 2}, {9, 10, 4},
	// 5696-5701
	{9, 28, 3}, {9, 17, 2}, {9, 6, 6}, {9, 26, 1}, {9, 14, 6}, {10, 3, 2},
	// 5702-5707
	{9, 22, 3}, {9, 12, 4}, {9, 30, 2}, {9, 18, 3}, {9, 8, 4}, {9, 26, 2},
	// 5708-5713
	{9, 15, 6}, {10, 4, 3}, {9, 24, 1}, {9, 12, 5}, {10, 1, 3}, {9, 20, 3},
	// 5714-5719
	{9, 10, 4}, {9, 28, 2}, {9, 17, 3}, {9, 6, 6}, {9, 26, 2}, {9, 15, 4},
	// 5720-5725
	{10, 3, 3}, {9, 22, 2}, {9, 11, 4}, {9, 29, 3}, {9, 19, 2}, {9, 7, 6},
	// 5726-5731
	{9, 27, 1}, {9, 15, 6}, {10, 5, 2}, {9, 23, 3}, {9, 13, 4}, {10, 1, 2},
	// 5732-5737
	{9, 20, 3}, {9, 9, 4}, {9, 27, 3}, {9, 17, 2}, {9, 6, 6}, {9, 25, 1},
	// 5738-5743
	{9, 13, 5}, {10, 2, 3}, {9, 22, 3}, {9, 11, 4}, {9, 29, 2}, {9, 18, 3},
	// 5744-5749
	{9, 8, 6}, {9, 27, 2}, {9, 16, 4}, {10, 4, 3}, {9, 24, 2}, {9, 12, 4},
	// 5750-5755
	{9, 30, 3}, {9, 20, 2}, {9, 9, 6}, {9, 28, 1}, {9, 16, 3}, {9, 6, 5},
	// 5756-5761
	{9, 25, 3}, {9, 14, 4}, {10, 2, 2}, {9, 21, 3}, {9, 11, 6}, {9, 30, 1},
	// 5762-5767
	{9, 18, 2}, {9, 7, 6}, {9, 27, 3}, {9, 16, 4}, {10, 4, 2}, {9, 23, 3},
	// 5768-5773
	{9, 13, 4}, {9, 30, 2}, {9, 19, 3}, {9, 9, 6}, {9, 29, 2}, {9, 17, 1},
	// 5774-5779
	{9, 5, 6}, {9, 25, 2}, {9, 14, 6}, {10, 3, 1}, {9, 21, 2}, {9, 10, 6},
	// 5780-5785
	{9, 30, 3}, {9, 19, 1}, {9, 7, 5}, {9, 26, 3}, {9, 16, 4}, {10, 3, 3},
	// 5786-5791
	{9, 23, 2}, {9, 12, 6}, {10, 2, 3}, {9, 21, 2}, {9, 10, 4}, {9, 28, 3},
	// 5792-5797
	{9, 18, 2}, {9, 6, 4}, {9, 24, 3}, {9, 14, 6}, {10, 4, 2}, {9, 22, 1},
	// 5798-5803
	{9, 10, 6}, {9, 30, 2}, {9, 19, 3}, {9, 8, 4}, {9, 26, 2}, {9, 15, 6},
	// 5804-5809
	{10, 5, 1}, {9, 22, 3}, {9, 12, 5}, {10, 1, 3}, {9, 21, 1}, {9, 8, 5},
	// 5810-5815
	{9, 27, 3}, {9, 17, 3}, {9, 7, 4}, {9, 24, 2}, {9, 13, 6}, {10, 3, 3},
	// 5816-5821
	{9, 23, 2}, {9, 11, 4}, {9, 29, 3}, {9, 19, 2}, {9, 8, 4}, {9, 25, 3},
	// 5822-5827
	{9, 15, 6}, {10, 5, 2}, {9, 24, 1}, {9, 11, 6}, {10, 1, 2}, {9, 20, 3},
	// 5828-5833
	{9, 10, 4}, {9, 27, 2}, {9, 16, 3}, {9, 6, 4}, {9, 24, 3}, {9, 13, 5},
	// 5834-5839
	{10, 2, 3}, {9, 22, 1}, {9, 10, 5}, {9, 28, 3}, {9, 18, 3}, {9, 8, 4},
	// 5840-5845
	{9, 26, 2}, {9, 14, 6}, {10, 4, 3}, {9, 24, 2}, {9, 13, 4}, {9, 30, 3},
	// 5846-5851
	{9, 20, 2}, {9, 9, 4}, {9, 27, 3}, {9, 16, 2}, {9, 5, 6}, {9, 25, 1},
	// 5852-5857
	{9, 13, 6}, {10, 2, 2}, {9, 21, 3}, {9, 11, 4}, {9, 29, 2}, {9, 17, 3},
	// 5858-5863
	{9, 7, 6}, {9, 27, 1}, {9, 15, 5}, {10, 4, 3}, {9, 24, 3}, {9, 14, 4},
	// 5864-5869
	{10, 2, 2}, {9, 20, 3}, {9, 10, 6}, {9, 30, 2}, {9, 19, 1}, {9, 6, 6},
	// 5870-5875
	{9, 26, 2}, {9, 15, 4}, {10, 3, 3}, {9, 22, 2}, {9, 11, 6}, {10, 1, 1},
	// 5876-5881
	{9, 19, 2}, {9, 7, 6}, {9, 27, 3}, {9, 17, 4}, {10, 5, 2}, {9, 23, 3},
	// 5882-5887
	{9, 13, 4}, {10, 1, 3}, {9, 21, 2}, {9, 9, 6}, {9, 29, 3}, {9, 19, 2},
	// 5888-5893
	{9, 8, 4}, {9, 25, 3}, {9, 15, 4}, {10, 3, 2}, {9, 22, 3}, {9, 11, 6},
	// 5894-5899
	{10, 1, 2}, {9, 20, 1}, {9, 8, 6}, {9, 27, 2}, {9, 16, 4}, {10, 4, 3},
	// 5900-5905
	{9, 24, 2}, {9, 12, 6}, {10, 2, 1}, {9, 20, 3}, {9, 10, 5}, {9, 28, 3},
	// 5906-5911
	{9, 18, 1}, {9, 6, 5}, {9, 25, 3}, {9, 14, 4}, {10, 2, 3}, {9, 22, 2},
	// 5912-5917
	{9, 11, 6}, {9, 30, 3}, {9, 20, 2}, {9, 9, 4}, {9, 27, 3}, {9, 16, 4},
	// 5918-5923
	{10, 4, 2}, {9, 23, 3}, {9, 13, 6}, {10, 2, 2}, {9, 21, 1}, {9, 9, 6},
	// 5924-5929
	{9, 29, 2}, {9, 17, 3}, {9, 7, 4}, {9, 25, 2}, {9, 14, 6}, {10, 3, 1},
	// 5930-5935
	{9, 21, 3}, {9, 11, 5}, {9, 30, 3}, {9, 19, 1}, {9, 7, 5}, {9, 26, 3},
	// 5936-5941
	{9, 16, 6}, {10, 5, 1}, {9, 23, 2}, {9, 12, 6}, {10, 2, 3}, {9, 21, 2},
	// 5942-5947
	{9, 10, 4}, {9, 28, 3}, {9, 18, 2}, {9, 6, 6}, {9, 26, 1}, {9, 14, 6},
	// 5948-5953
	{10, 4, 2}, {9, 22, 3}, {9, 12, 4}, {9, 30, 2}, {9, 19, 3}, {9, 8, 4},
	// 5954-5959
	{9, 26, 2}, {9, 15, 6}, {10, 5, 3}, {9, 24, 1}, {9, 12, 5}, {10, 1, 3},
	// 5960-5965
	{9, 21, 3}, {9, 11, 4}, {9, 29, 2}, {9, 18, 3}, {9, 8, 6}, {9, 27, 2},
	// 5966-5971
	{9, 16, 4}, {10, 4, 3}, {9, 24, 2}, {9, 12, 4}, {9, 30, 3}, {9, 20, 2},
	// 5972-5977
	{9, 9, 6}, {9, 28, 1}, {9, 16, 6}, {10, 6, 2}, {9, 25, 3}, {9, 14, 4},
	// 5978-5983
	{10, 2, 2}, {9, 21, 3}, {9, 11, 4}, {9, 28, 3}, {9, 18, 2}, {9, 7, 6},
	// 5984-5989
	{9, 27, 1}, {9, 14, 5}, {10, 3, 3}, {9, 23, 3}, {9, 13, 4}, {9, 30, 2},
	// 5990-5995
	{9, 19, 3}, {9, 9, 6}, {9, 29, 2}, {9, 17, 4}, {10, 5, 3}, {9, 25, 2},
	// 5996-5999
	{9, 14, 4}, {10, 1, 3}, {9, 21, 2}, {9, 10, 6},
}

// hebrewEndOfTable is 1 Tishri 6000, the first day past the table.
var hebrewEndOfTable = gregorianDate{2239, 9, 30}
