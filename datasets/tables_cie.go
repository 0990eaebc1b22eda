package datasets

import (
	"github.com/kovidgoyal/colorimetry/spectral"
)

// CIE 1931 2° standard observer, 360-830nm at 5nm intervals.
var cie1931Rows = [][3]float64{
	{0.000129900, 0.000003917, 0.000606100}, // 360
	{0.000232100, 0.000006965, 0.001086000}, // 365
	{0.000414900, 0.000012390, 0.001946000}, // 370
	{0.000741600, 0.000022020, 0.003486000}, // 375
	{0.001368000, 0.000039000, 0.006450001}, // 380
	{0.002236000, 0.000064000, 0.010549990}, // 385
	{0.004243000, 0.000120000, 0.020050010}, // 390
	{0.007650000, 0.000217000, 0.036210000}, // 395
	{0.014310000, 0.000396000, 0.067850010}, // 400
	{0.023190000, 0.000640000, 0.110200000}, // 405
	{0.043510000, 0.001210000, 0.207400000}, // 410
	{0.077630000, 0.002180000, 0.371300000}, // 415
	{0.134380000, 0.004000000, 0.645600000}, // 420
	{0.214770000, 0.007300000, 1.039050100}, // 425
	{0.283900000, 0.011600000, 1.385600000}, // 430
	{0.328500000, 0.016840000, 1.622960000}, // 435
	{0.348280000, 0.023000000, 1.747060000}, // 440
	{0.348060000, 0.029800000, 1.782600000}, // 445
	{0.336200000, 0.038000000, 1.772110000}, // 450
	{0.318700000, 0.048000000, 1.744100000}, // 455
	{0.290800000, 0.060000000, 1.669200000}, // 460
	{0.251100000, 0.073900000, 1.528100000}, // 465
	{0.195360000, 0.090980000, 1.287640000}, // 470
	{0.142100000, 0.112600000, 1.041900000}, // 475
	{0.095640000, 0.139020000, 0.812950100}, // 480
	{0.057950010, 0.169300000, 0.616200000}, // 485
	{0.032010000, 0.208020000, 0.465180000}, // 490
	{0.014700000, 0.258600000, 0.353300000}, // 495
	{0.004900000, 0.323000000, 0.272000000}, // 500
	{0.002400000, 0.407300000, 0.212300000}, // 505
	{0.009300000, 0.503000000, 0.158200000}, // 510
	{0.029100000, 0.608200000, 0.111700000}, // 515
	{0.063270000, 0.710000000, 0.078249990}, // 520
	{0.109600000, 0.793200000, 0.057250010}, // 525
	{0.165500000, 0.862000000, 0.042160000}, // 530
	{0.225749900, 0.914850100, 0.029840000}, // 535
	{0.290400000, 0.954000000, 0.020300000}, // 540
	{0.359700000, 0.980300000, 0.013400000}, // 545
	{0.433449900, 0.994950100, 0.008749999}, // 550
	{0.512050100, 1.000000000, 0.005749999}, // 555
	{0.594500000, 0.995000000, 0.003900000}, // 560
	{0.678400000, 0.978600000, 0.002749999}, // 565
	{0.762100000, 0.952000000, 0.002100000}, // 570
	{0.842500000, 0.915400000, 0.001800000}, // 575
	{0.916300000, 0.870000000, 0.001650001}, // 580
	{0.978600000, 0.816300000, 0.001400000}, // 585
	{1.026300000, 0.757000000, 0.001100000}, // 590
	{1.056700000, 0.694900000, 0.001000000}, // 595
	{1.062200000, 0.631000000, 0.000800000}, // 600
	{1.045600000, 0.566800000, 0.000600000}, // 605
	{1.002600000, 0.503000000, 0.000340000}, // 610
	{0.938400000, 0.441200000, 0.000240000}, // 615
	{0.854449900, 0.381000000, 0.000190000}, // 620
	{0.751400000, 0.321000000, 0.000100000}, // 625
	{0.642400000, 0.265000000, 0.000049999}, // 630
	{0.541900000, 0.217000000, 0.000030000}, // 635
	{0.447900000, 0.175000000, 0.000020000}, // 640
	{0.360800000, 0.138200000, 0.000010000}, // 645
	{0.283500000, 0.107000000, 0.000000000}, // 650
	{0.218700000, 0.081600000, 0.000000000}, // 655
	{0.164900000, 0.061000000, 0.000000000}, // 660
	{0.121200000, 0.044580000, 0.000000000}, // 665
	{0.087400000, 0.032000000, 0.000000000}, // 670
	{0.063600000, 0.023200000, 0.000000000}, // 675
	{0.046770000, 0.017000000, 0.000000000}, // 680
	{0.032900000, 0.011920000, 0.000000000}, // 685
	{0.022700000, 0.008210000, 0.000000000}, // 690
	{0.015840000, 0.005723000, 0.000000000}, // 695
	{0.011359160, 0.004102000, 0.000000000}, // 700
	{0.008110916, 0.002929000, 0.000000000}, // 705
	{0.005790346, 0.002091000, 0.000000000}, // 710
	{0.004109457, 0.001484000, 0.000000000}, // 715
	{0.002899327, 0.001047000, 0.000000000}, // 720
	{0.002049190, 0.000740000, 0.000000000}, // 725
	{0.001439971, 0.000520000, 0.000000000}, // 730
	{0.000999949, 0.000361100, 0.000000000}, // 735
	{0.000690079, 0.000249200, 0.000000000}, // 740
	{0.000476021, 0.000171900, 0.000000000}, // 745
	{0.000332301, 0.000120000, 0.000000000}, // 750
	{0.000234826, 0.000084800, 0.000000000}, // 755
	{0.000166151, 0.000060000, 0.000000000}, // 760
	{0.000117413, 0.000042400, 0.000000000}, // 765
	{0.000083075, 0.000030000, 0.000000000}, // 770
	{0.000058707, 0.000021200, 0.000000000}, // 775
	{0.000041509, 0.000014990, 0.000000000}, // 780
	{0.000029353, 0.000010600, 0.000000000}, // 785
	{0.000020674, 0.000007465, 0.000000000}, // 790
	{0.000014560, 0.000005257, 0.000000000}, // 795
	{0.000010254, 0.000003702, 0.000000000}, // 800
	{0.000007222, 0.000002607, 0.000000000}, // 805
	{0.000005086, 0.000001836, 0.000000000}, // 810
	{0.000003582, 0.000001293, 0.000000000}, // 815
	{0.000002523, 0.000000910, 0.000000000}, // 820
	{0.000001777, 0.000000641, 0.000000000}, // 825
	{0.000001251, 0.000000451, 0.000000000}, // 830
}

var cie1931Shape = spectral.Shape{Start: 360, End: 830, Interval: 5}

// CIE standard illuminant D65, 300-830nm at 5nm intervals.
var d65Values = []float64{
	0.0341, 1.6643, 3.2945, 11.7652, 20.236, 28.6447, // 300
	37.0535, 38.5011, 39.9488, 42.4302, 44.9117, 45.775, // 330
	46.6383, 49.3637, 52.0891, 51.0323, 49.9755, 52.3118, // 360
	54.6482, 68.7015, 82.7549, 87.1204, 91.486, 92.4589, // 390
	93.4318, 90.057, 86.6823, 95.7736, 104.865, 110.936, // 420
	117.008, 117.41, 117.812, 116.336, 114.861, 115.392, // 450
	115.923, 112.367, 108.811, 109.082, 109.354, 108.578, // 480
	107.802, 106.296, 104.79, 106.239, 107.689, 106.047, // 510
	104.405, 104.225, 104.046, 102.023, 100.0, 98.1671, // 540
	96.3342, 96.0611, 95.788, 92.2368, 88.6856, 89.3459, // 570
	90.0062, 89.8026, 89.5991, 88.6489, 87.6987, 85.4936, // 600
	83.2886, 83.4939, 83.6992, 81.863, 80.0268, 80.1207, // 630
	80.2146, 81.2462, 82.2778, 80.281, 78.2842, 74.0027, // 660
	69.7213, 70.6652, 71.6091, 72.979, 74.349, 67.9765, // 690
	61.604, 65.7448, 69.8856, 72.4863, 75.087, 69.3398, // 720
	63.5927, 55.0054, 46.4182, 56.6118, 66.8054, 65.0941, // 750
	63.3828, 63.8434, 64.304, 61.8779, 59.4519, 55.7054, // 780
	51.959, 54.6998, 57.4406, 58.8765, 60.3125, // 810
}

var d65Shape = spectral.Shape{Start: 300, End: 830, Interval: 5}
