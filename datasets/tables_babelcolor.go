package datasets

// BabelColor Average reflectances of the 24 ColorChecker patches,
// 380-780nm at 10nm intervals, in chart order.
var babelColorAverage = []struct {
	name   string
	values []float64
}{
	{"dark skin", []float64{
		0.055, 0.058, 0.061, 0.062, 0.062, 0.062, 0.062, 0.062, 0.062, 0.062,
		0.062, 0.063, 0.065, 0.070, 0.076, 0.079, 0.081, 0.084, 0.091, 0.103,
		0.119, 0.134, 0.143, 0.147, 0.151, 0.158, 0.168, 0.179, 0.188, 0.190,
		0.186, 0.181, 0.182, 0.187, 0.196, 0.209, 0.224, 0.242, 0.257, 0.271,
		0.286,
	}},
	{"light skin", []float64{
		0.117, 0.143, 0.175, 0.191, 0.196, 0.199, 0.204, 0.213, 0.228, 0.251,
		0.280, 0.309, 0.329, 0.333, 0.315, 0.286, 0.273, 0.276, 0.277, 0.289,
		0.339, 0.420, 0.488, 0.525, 0.546, 0.562, 0.578, 0.595, 0.612, 0.625,
		0.638, 0.656, 0.678, 0.700, 0.717, 0.734, 0.747, 0.757, 0.765, 0.772,
		0.777,
	}},
	{"blue sky", []float64{
		0.130, 0.177, 0.251, 0.306, 0.324, 0.330, 0.333, 0.331, 0.323, 0.311,
		0.298, 0.285, 0.269, 0.250, 0.231, 0.214, 0.199, 0.185, 0.169, 0.154,
		0.140, 0.125, 0.116, 0.110, 0.105, 0.103, 0.104, 0.100, 0.096, 0.095,
		0.097, 0.106, 0.116, 0.125, 0.129, 0.132, 0.131, 0.126, 0.124, 0.127,
		0.135,
	}},
	{"foliage", []float64{
		0.051, 0.054, 0.056, 0.057, 0.058, 0.059, 0.060, 0.061, 0.062, 0.063,
		0.065, 0.067, 0.075, 0.101, 0.145, 0.178, 0.184, 0.170, 0.149, 0.133,
		0.122, 0.115, 0.109, 0.105, 0.104, 0.106, 0.109, 0.112, 0.114, 0.114,
		0.112, 0.115, 0.131, 0.167, 0.226, 0.296, 0.355, 0.395, 0.423, 0.440,
		0.452,
	}},
	{"blue flower", []float64{
		0.144, 0.198, 0.294, 0.375, 0.408, 0.421, 0.426, 0.426, 0.419, 0.403,
		0.379, 0.346, 0.311, 0.281, 0.254, 0.229, 0.214, 0.208, 0.202, 0.194,
		0.193, 0.200, 0.214, 0.230, 0.241, 0.254, 0.279, 0.313, 0.348, 0.366,
		0.366, 0.359, 0.358, 0.365, 0.377, 0.398, 0.426, 0.456, 0.485, 0.510,
		0.530,
	}},
	{"bluish green", []float64{
		0.136, 0.179, 0.247, 0.297, 0.320, 0.337, 0.355, 0.381, 0.419, 0.466,
		0.510, 0.546, 0.567, 0.574, 0.569, 0.551, 0.524, 0.488, 0.445, 0.400,
		0.350, 0.299, 0.252, 0.221, 0.204, 0.196, 0.191, 0.188, 0.191, 0.199,
		0.212, 0.223, 0.232, 0.233, 0.229, 0.229, 0.236, 0.253, 0.275, 0.298,
		0.320,
	}},
	{"orange", []float64{
		0.054, 0.054, 0.053, 0.052, 0.052, 0.052, 0.052, 0.052, 0.052, 0.053,
		0.054, 0.055, 0.057, 0.059, 0.061, 0.062, 0.065, 0.067, 0.075, 0.101,
		0.176, 0.316, 0.469, 0.566, 0.600, 0.609, 0.612, 0.615, 0.618, 0.620,
		0.622, 0.623, 0.625, 0.627, 0.629, 0.631, 0.633, 0.635, 0.637, 0.639,
		0.641,
	}},
	{"purplish blue", []float64{
		0.122, 0.164, 0.229, 0.286, 0.327, 0.361, 0.388, 0.400, 0.392, 0.362,
		0.316, 0.260, 0.209, 0.168, 0.138, 0.117, 0.104, 0.096, 0.090, 0.086,
		0.084, 0.084, 0.084, 0.084, 0.084, 0.085, 0.090, 0.098, 0.109, 0.123,
		0.143, 0.169, 0.205, 0.244, 0.287, 0.330, 0.365, 0.398, 0.429, 0.451,
		0.466,
	}},
	{"moderate red", []float64{
		0.096, 0.115, 0.131, 0.135, 0.133, 0.132, 0.130, 0.128, 0.125, 0.120,
		0.115, 0.110, 0.105, 0.100, 0.095, 0.093, 0.092, 0.093, 0.096, 0.108,
		0.156, 0.265, 0.399, 0.500, 0.556, 0.579, 0.588, 0.591, 0.593, 0.594,
		0.598, 0.602, 0.607, 0.613, 0.619, 0.625, 0.631, 0.637, 0.643, 0.650,
		0.656,
	}},
	{"purple", []float64{
		0.092, 0.116, 0.146, 0.169, 0.178, 0.173, 0.158, 0.139, 0.119, 0.101,
		0.087, 0.075, 0.066, 0.060, 0.056, 0.053, 0.051, 0.051, 0.052, 0.052,
		0.051, 0.052, 0.058, 0.073, 0.096, 0.119, 0.141, 0.166, 0.194, 0.227,
		0.265, 0.309, 0.355, 0.396, 0.436, 0.478, 0.518, 0.555, 0.588, 0.614,
		0.636,
	}},
	{"yellow green", []float64{
		0.061, 0.061, 0.062, 0.063, 0.064, 0.066, 0.069, 0.075, 0.085, 0.105,
		0.139, 0.192, 0.271, 0.376, 0.476, 0.531, 0.549, 0.546, 0.528, 0.504,
		0.471, 0.428, 0.381, 0.347, 0.327, 0.318, 0.312, 0.310, 0.314, 0.327,
		0.345, 0.363, 0.376, 0.381, 0.378, 0.379, 0.396, 0.433, 0.481, 0.522,
		0.551,
	}},
	{"orange yellow", []float64{
		0.063, 0.063, 0.063, 0.064, 0.064, 0.064, 0.065, 0.066, 0.067, 0.068,
		0.071, 0.076, 0.087, 0.125, 0.206, 0.305, 0.383, 0.431, 0.469, 0.518,
		0.568, 0.607, 0.628, 0.637, 0.640, 0.642, 0.645, 0.648, 0.651, 0.653,
		0.657, 0.664, 0.673, 0.680, 0.684, 0.688, 0.692, 0.696, 0.700, 0.702,
		0.704,
	}},
	{"blue", []float64{
		0.066, 0.079, 0.102, 0.146, 0.200, 0.244, 0.282, 0.309, 0.308, 0.278,
		0.231, 0.178, 0.130, 0.094, 0.070, 0.054, 0.046, 0.042, 0.039, 0.038,
		0.038, 0.038, 0.038, 0.039, 0.039, 0.040, 0.041, 0.042, 0.044, 0.045,
		0.046, 0.046, 0.048, 0.052, 0.057, 0.065, 0.075, 0.088, 0.102, 0.114,
		0.123,
	}},
	{"green", []float64{
		0.052, 0.053, 0.054, 0.055, 0.057, 0.059, 0.061, 0.066, 0.075, 0.093,
		0.125, 0.178, 0.246, 0.307, 0.337, 0.337, 0.317, 0.281, 0.238, 0.194,
		0.153, 0.121, 0.101, 0.088, 0.080, 0.075, 0.072, 0.070, 0.069, 0.070,
		0.072, 0.074, 0.076, 0.078, 0.081, 0.085, 0.092, 0.103, 0.117, 0.133,
		0.148,
	}},
	{"red", []float64{
		0.050, 0.049, 0.048, 0.047, 0.047, 0.047, 0.047, 0.047, 0.046, 0.045,
		0.044, 0.044, 0.045, 0.046, 0.047, 0.048, 0.049, 0.050, 0.054, 0.060,
		0.072, 0.104, 0.178, 0.312, 0.467, 0.581, 0.644, 0.675, 0.690, 0.698,
		0.706, 0.715, 0.724, 0.734, 0.742, 0.749, 0.758, 0.765, 0.772, 0.776,
		0.780,
	}},
	{"yellow", []float64{
		0.058, 0.054, 0.052, 0.052, 0.053, 0.054, 0.056, 0.059, 0.067, 0.081,
		0.107, 0.152, 0.225, 0.336, 0.462, 0.559, 0.616, 0.650, 0.672, 0.694,
		0.710, 0.723, 0.731, 0.739, 0.746, 0.752, 0.758, 0.764, 0.769, 0.771,
		0.776, 0.782, 0.790, 0.796, 0.800, 0.805, 0.809, 0.812, 0.816, 0.818,
		0.819,
	}},
	{"magenta", []float64{
		0.145, 0.195, 0.283, 0.346, 0.362, 0.354, 0.334, 0.306, 0.276, 0.248,
		0.218, 0.190, 0.168, 0.149, 0.127, 0.107, 0.100, 0.102, 0.104, 0.109,
		0.137, 0.200, 0.290, 0.400, 0.516, 0.615, 0.687, 0.732, 0.760, 0.774,
		0.783, 0.793, 0.803, 0.812, 0.817, 0.825, 0.828, 0.837, 0.838, 0.840,
		0.843,
	}},
	{"cyan", []float64{
		0.108, 0.141, 0.192, 0.236, 0.261, 0.286, 0.317, 0.353, 0.390, 0.426,
		0.446, 0.444, 0.423, 0.385, 0.337, 0.283, 0.231, 0.185, 0.146, 0.118,
		0.101, 0.090, 0.082, 0.076, 0.074, 0.073, 0.073, 0.074, 0.076, 0.077,
		0.076, 0.075, 0.073, 0.072, 0.074, 0.079, 0.090, 0.107, 0.127, 0.145,
		0.160,
	}},
	{"white 9.5 (.05 D)", []float64{
		0.189, 0.255, 0.423, 0.660, 0.811, 0.862, 0.877, 0.884, 0.891, 0.896,
		0.899, 0.904, 0.907, 0.909, 0.911, 0.910, 0.911, 0.914, 0.913, 0.916,
		0.915, 0.916, 0.914, 0.915, 0.918, 0.919, 0.921, 0.923, 0.924, 0.922,
		0.922, 0.925, 0.927, 0.930, 0.930, 0.933, 0.932, 0.936, 0.936, 0.938,
		0.939,
	}},
	{"neutral 8 (.23 D)", []float64{
		0.171, 0.232, 0.365, 0.507, 0.567, 0.583, 0.588, 0.590, 0.591, 0.590,
		0.588, 0.588, 0.589, 0.589, 0.591, 0.590, 0.590, 0.590, 0.589, 0.591,
		0.590, 0.590, 0.587, 0.585, 0.583, 0.580, 0.578, 0.576, 0.574, 0.572,
		0.571, 0.569, 0.568, 0.568, 0.566, 0.566, 0.566, 0.566, 0.567, 0.567,
		0.568,
	}},
	{"neutral 6.5 (.44 D)", []float64{
		0.144, 0.192, 0.272, 0.331, 0.350, 0.357, 0.361, 0.363, 0.363, 0.361,
		0.359, 0.358, 0.358, 0.359, 0.360, 0.360, 0.361, 0.361, 0.360, 0.360,
		0.361, 0.361, 0.360, 0.358, 0.355, 0.352, 0.350, 0.348, 0.345, 0.343,
		0.340, 0.338, 0.335, 0.334, 0.332, 0.331, 0.331, 0.330, 0.329, 0.330,
		0.330,
	}},
	{"neutral 5 (.70 D)", []float64{
		0.105, 0.129, 0.158, 0.174, 0.180, 0.183, 0.186, 0.189, 0.190, 0.191,
		0.192, 0.193, 0.194, 0.195, 0.196, 0.197, 0.198, 0.199, 0.198, 0.199,
		0.200, 0.200, 0.199, 0.198, 0.196, 0.195, 0.193, 0.191, 0.189, 0.187,
		0.185, 0.184, 0.182, 0.181, 0.180, 0.179, 0.179, 0.178, 0.177, 0.177,
		0.177,
	}},
	{"neutral 3.5 (1.05 D)", []float64{
		0.068, 0.075, 0.085, 0.090, 0.091, 0.092, 0.093, 0.094, 0.094, 0.094,
		0.094, 0.094, 0.095, 0.095, 0.096, 0.096, 0.096, 0.097, 0.097, 0.097,
		0.097, 0.097, 0.096, 0.096, 0.095, 0.094, 0.094, 0.093, 0.092, 0.091,
		0.090, 0.090, 0.089, 0.089, 0.088, 0.088, 0.088, 0.087, 0.087, 0.087,
		0.087,
	}},
	{"black 2 (1.5 D)", []float64{
		0.031, 0.032, 0.032, 0.033, 0.033, 0.033, 0.033, 0.033, 0.032, 0.032,
		0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032,
		0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032, 0.032,
		0.032, 0.032, 0.032, 0.032, 0.032, 0.033, 0.033, 0.033, 0.033, 0.033,
		0.033,
	}},
}
