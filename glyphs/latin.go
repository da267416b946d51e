// seehuhn.de/go/bitmap - pixel plotting for lines, curves and ellipses
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package glyphs

// Outlines are given in design units, x to the right and y downwards.
// Zero-length lines mark the start of a curve run and are kept as drawn.

// glyphLowerY is the outline of 'y'.
var glyphLowerY = []Segment{
	line(112, 375, 147, 375),
	line(147, 375, 260, 601),
	line(88, 698, 82, 715),
	line(378, 372, 429, 372),
	line(429, 372, 429, 356),
	line(429, 356, 321, 356),
	line(321, 356, 321, 372),
	line(321, 372, 360, 372),
	line(360, 372, 271, 585),
	line(271, 585, 163, 375),
	line(163, 375, 217, 374),
	line(217, 374, 217, 356),
	line(217, 356, 112, 356),
	line(112, 356, 112, 375),
	cubic(260, 601, 260, 601, 230, 670, 204, 695),
	cubic(204, 695, 191, 706, 175, 717, 158, 719),
	cubic(158, 719, 135, 722, 88, 698, 88, 698),
	cubic(82, 715, 82, 715, 131, 737, 155, 735),
	cubic(155, 735, 175, 733, 194, 721, 210, 708),
	cubic(210, 708, 240, 681, 257, 642, 277, 606),
	cubic(277, 606, 317, 534, 378, 372, 378, 372),
}

// glyphUpperW is the outline of 'W'.
var glyphUpperW = []Segment{
	line(70, 322, 200, 712),
	line(200, 712, 260, 712),
	line(260, 712, 340, 442),
	line(340, 442, 420, 712),
	line(420, 712, 480, 712),
	line(480, 712, 590, 322),
	line(590, 322, 500, 332),
	line(500, 332, 450, 612),
	line(450, 612, 370, 402),
	line(370, 402, 310, 402),
	line(310, 402, 230, 612),
	line(230, 612, 160, 332),
	line(160, 332, 70, 322),
}

// glyphUpperG is the outline of 'G'.
var glyphUpperG = []Segment{
	line(504, 590, 506, 448),
	line(506, 448, 386, 446),
	line(386, 446, 384, 477),
	line(384, 477, 475, 477),
	line(475, 477, 475, 543),
	line(516, 306, 516, 306),
	cubic(516, 306, 516, 306, 479, 274, 457, 263),
	cubic(457, 263, 437, 253, 414, 246, 392, 250),
	cubic(392, 250, 366, 254, 342, 271, 324, 291),
	cubic(324, 291, 301, 316, 288, 349, 280, 381),
	cubic(280, 381, 271, 421, 268, 464, 280, 503),
	cubic(280, 503, 289, 533, 307, 561, 332, 579),
	cubic(332, 579, 351, 593, 376, 598, 400, 598),
	cubic(400, 598, 435, 599, 504, 590, 504, 590),
	cubic(475, 543, 476, 572, 449, 570, 426, 567),
	cubic(426, 567, 398, 563, 342, 547, 326, 524),
	cubic(326, 524, 306, 494, 307, 454, 311, 420),
	cubic(311, 420, 314, 382, 324, 341, 348, 311),
	cubic(348, 311, 364, 293, 387, 280, 412, 282),
	cubic(412, 282, 445, 284, 492, 330, 492, 330),
	cubic(492, 330, 492, 330, 486, 338, 516, 306),
}

// glyphLowerA is the outline of 'a'.
var glyphLowerA = []Segment{
	line(401, 530, 455, 91),
	line(315, 20, 315, 20),
	line(372, 303, 372, 303),
	cubic(315, 20, 283, 20, 253, 29, 227, 47),
	cubic(227, 47, 191, 73, 180, 182, 180, 182),
	cubic(180, 182, 193, 197, 215, 232, 215, 232),
	cubic(215, 232, 215, 232, 224, 119, 249, 92),
	cubic(249, 92, 281, 51, 327, 46, 382, 94),
	cubic(382, 94, 420, 150, 397, 205, 365, 248),
	cubic(365, 248, 329, 297, 271, 294, 225, 307),
	cubic(225, 307, 129, 346, 120, 464, 143, 541),
	cubic(143, 541, 152, 582, 173, 610, 210, 621),
	cubic(210, 621, 270, 638, 313, 621, 345, 583),
	cubic(345, 583, 351, 610, 352, 640, 378, 646),
	cubic(378, 646, 418, 654, 471, 648, 432, 609),
	cubic(432, 609, 393, 571, 403, 555, 401, 530),
	cubic(455, 91, 459, 63, 411, 37, 360, 25),
	cubic(360, 25, 344, 21, 329, 20, 315, 20),
	cubic(372, 303, 390, 387, 371, 555, 272, 591),
	cubic(272, 591, 174, 628, 155, 454, 192, 404),
	cubic(192, 404, 244, 333, 298, 299, 372, 303),
}

// glyphUpperH is the outline of 'H'.
var glyphUpperH = []Segment{
	line(115, 172, 115, 207),
	line(115, 207, 170, 207),
	line(170, 207, 170, 692),
	line(170, 692, 115, 692),
	line(115, 692, 115, 722),
	line(115, 722, 265, 722),
	line(265, 722, 265, 692),
	line(265, 692, 210, 692),
	line(210, 692, 210, 442),
	line(210, 442, 440, 442),
	line(440, 442, 440, 692),
	line(440, 692, 380, 692),
	line(380, 692, 380, 722),
	line(380, 722, 535, 722),
	line(535, 722, 535, 692),
	line(535, 692, 485, 692),
	line(485, 692, 485, 207),
	line(485, 207, 535, 207),
	line(535, 207, 535, 172),
	line(535, 172, 380, 172),
	line(380, 172, 380, 207),
	line(380, 207, 440, 207),
	line(440, 207, 440, 402),
	line(440, 402, 210, 402),
	line(210, 402, 210, 207),
	line(210, 207, 265, 207),
	line(265, 207, 265, 172),
	line(265, 172, 115, 172),
}

// glyphLowerI is the outline of 'i'.
var glyphLowerI = []Segment{
	line(300, 379, 300, 852),
	line(300, 852, 373, 852),
	line(373, 852, 373, 379),
	line(373, 379, 300, 379),
	line(344, 166, 344, 166),
	cubic(344, 166, 325, 165, 305, 179, 294, 194),
	cubic(294, 194, 283, 210, 277, 232, 284, 250),
	cubic(284, 250, 291, 272, 314, 293, 337, 295),
	cubic(337, 295, 356, 296, 376, 282, 386, 265),
	cubic(386, 265, 397, 247, 399, 221, 390, 202),
	cubic(390, 202, 382, 184, 363, 168, 344, 166),
}

// glyphLowerF is the outline of 'f'.
var glyphLowerF = []Segment{
	line(450, 182, 450, 132),
	line(270, 302, 210, 302),
	line(210, 302, 210, 332),
	line(210, 332, 270, 332),
	line(270, 332, 270, 702),
	line(270, 702, 210, 702),
	line(210, 702, 210, 732),
	line(210, 732, 340, 732),
	line(340, 732, 360, 702),
	line(360, 702, 300, 702),
	line(300, 702, 300, 332),
	line(300, 332, 360, 332),
	line(360, 332, 360, 302),
	line(360, 302, 300, 302),
	line(450, 182, 450, 182),
	cubic(450, 132, 450, 132, 377, 132, 348, 143),
	cubic(348, 143, 316, 156, 294, 180, 280, 212),
	cubic(280, 212, 267, 240, 270, 302, 270, 302),
	cubic(300, 302, 300, 302, 297, 248, 307, 223),
	cubic(307, 223, 316, 200, 356, 180, 380, 172),
	cubic(380, 172, 407, 163, 450, 182, 450, 182),
}

// glyphLowerB is the outline of 'b'.
var glyphLowerB = []Segment{
	line(234, 570, 279, 279),
	line(279, 279, 237, 275),
	line(263, 580, 263, 580),
	cubic(237, 275, 233, 288, 232, 295, 231, 301),
	cubic(231, 301, 194, 577, 199, 713, 199, 713),
	cubic(199, 713, 199, 713, 336, 729, 382, 689),
	cubic(382, 689, 416, 660, 431, 604, 418, 562),
	cubic(418, 562, 407, 529, 371, 496, 335, 495),
	cubic(335, 495, 293, 495, 234, 570, 234, 570),
	cubic(263, 580, 263, 580, 212, 648, 232, 673),
	cubic(232, 673, 258, 706, 325, 691, 355, 663),
	cubic(355, 663, 380, 641, 383, 596, 372, 564),
	cubic(372, 564, 366, 547, 350, 528, 332, 528),
	cubic(332, 528, 303, 526, 263, 580, 263, 580),
}

// glyphLowerN is the outline of 'n'.
var glyphLowerN = []Segment{
	line(170, 332, 170, 362),
	line(170, 362, 220, 362),
	line(220, 362, 220, 682),
	line(220, 682, 170, 682),
	line(170, 682, 140, 712),
	line(140, 712, 300, 712),
	line(300, 712, 300, 682),
	line(300, 682, 250, 682),
	line(250, 682, 251, 382),
	line(480, 442, 480, 682),
	line(480, 682, 430, 682),
	line(430, 682, 430, 712),
	line(430, 712, 560, 712),
	line(560, 712, 510, 682),
	line(510, 682, 510, 442),
	line(250, 352, 250, 332),
	line(250, 332, 170, 332),
	cubic(251, 382, 251, 382, 286, 370, 346, 371),
	cubic(346, 371, 407, 373, 427, 385, 444, 399),
	cubic(444, 399, 458, 411, 480, 442, 480, 442),
	cubic(510, 442, 510, 442, 501, 403, 480, 382),
	cubic(480, 382, 450, 352, 428, 347, 360, 342),
	cubic(360, 342, 291, 337, 250, 352, 250, 352),
}

// glyphUpperS is the outline of 'S'.
var glyphUpperS = []Segment{
	line(531, 248, 530, 182),
	line(185, 761, 187, 829),
	line(471, 504, 471, 504),
	cubic(471, 504, 434, 427, 325, 402, 283, 327),
	cubic(283, 327, 272, 306, 262, 279, 269, 256),
	cubic(269, 256, 276, 234, 300, 220, 319, 209),
	cubic(319, 209, 341, 196, 366, 188, 391, 186),
	cubic(391, 186, 428, 182, 472, 180, 503, 201),
	cubic(503, 201, 519, 211, 532, 266, 531, 248),
	cubic(530, 182, 529, 159, 538, 154, 477, 153),
	cubic(477, 153, 477, 153, 345, 138, 272, 196),
	cubic(272, 196, 200, 254, 211, 307, 223, 334),
	cubic(223, 334, 258, 415, 367, 442, 417, 515),
	cubic(417, 515, 432, 538, 440, 565, 446, 592),
	cubic(446, 592, 454, 631, 456, 671, 451, 710),
	cubic(451, 710, 445, 747, 449, 778, 412, 817),
	cubic(412, 817, 366, 865, 268, 869, 212, 833),
	cubic(212, 833, 190, 819, 184, 742, 185, 761),
	cubic(187, 829, 190, 883, 251, 880, 278, 880),
	cubic(278, 880, 308, 879, 337, 879, 366, 879),
	cubic(366, 879, 419, 878, 471, 802, 491, 743),
	cubic(491, 743, 517, 668, 506, 576, 471, 504),
}

// glyphUpperX is the outline of 'X'.
var glyphUpperX = []Segment{
	line(200, 322, 320, 522),
	line(320, 522, 190, 712),
	line(190, 712, 230, 712),
	line(230, 712, 340, 542),
	line(340, 542, 450, 722),
	line(450, 722, 490, 722),
	line(490, 722, 360, 512),
	line(360, 512, 486, 322),
	line(486, 322, 450, 322),
	line(450, 322, 340, 492),
	line(340, 492, 240, 322),
	line(240, 322, 200, 322),
}

// glyphLowerK is the outline of 'k'.
var glyphLowerK = []Segment{
	line(141, 160, 162, 166),
	line(162, 166, 163, 618),
	line(163, 618, 215, 605),
	line(215, 605, 221, 574),
	line(221, 574, 187, 590),
	line(187, 590, 193, 477),
	line(193, 477, 317, 455),
	line(317, 455, 317, 502),
	line(317, 502, 350, 545),
	line(350, 545, 414, 621),
	line(414, 621, 448, 594),
	line(448, 594, 463, 532),
	line(188, 340, 186, 148),
	line(186, 148, 142, 143),
	line(142, 143, 141, 160),
	line(201, 377, 200, 453),
	line(200, 453, 307, 435),
	line(335, 301, 335, 301),
	cubic(463, 532, 463, 532, 440, 584, 421, 587),
	cubic(421, 587, 399, 591, 390, 553, 376, 536),
	cubic(376, 536, 363, 520, 339, 492, 343, 473),
	cubic(343, 473, 349, 435, 387, 447, 398, 410),
	cubic(398, 410, 409, 378, 431, 328, 412, 300),
	cubic(412, 300, 400, 280, 400, 277, 377, 278),
	cubic(377, 278, 320, 281, 188, 340, 188, 340),
	cubic(335, 301, 284, 311, 202, 331, 201, 377),
	cubic(307, 435, 341, 429, 372, 401, 387, 370),
	cubic(387, 370, 397, 352, 404, 323, 390, 307),
	cubic(390, 307, 378, 293, 353, 297, 335, 301),
}

// glyphUpperE is the outline of 'E'.
var glyphUpperE = []Segment{
	line(150, 202, 150, 252),
	line(150, 252, 200, 252),
	line(200, 252, 200, 832),
	line(200, 832, 150, 832),
	line(150, 832, 150, 882),
	line(150, 882, 520, 882),
	line(520, 882, 520, 752),
	line(520, 752, 470, 752),
	line(470, 752, 470, 832),
	line(470, 832, 250, 832),
	line(250, 832, 250, 562),
	line(250, 562, 430, 562),
	line(430, 562, 430, 512),
	line(430, 512, 250, 512),
	line(250, 512, 250, 252),
	line(250, 252, 470, 252),
	line(470, 252, 470, 332),
	line(470, 332, 520, 332),
	line(520, 332, 520, 202),
	line(520, 202, 150, 202),
}

// glyphUpperQ is the outline of 'Q'.
var glyphUpperQ = []Segment{
	line(130, 722, 200, 812),
	line(200, 812, 490, 812),
	line(490, 812, 540, 872),
	line(540, 872, 630, 872),
	line(630, 872, 570, 802),
	line(570, 802, 640, 732),
	line(640, 732, 640, 342),
	line(640, 342, 561, 274),
	line(561, 274, 200, 272),
	line(200, 272, 130, 342),
	line(130, 342, 130, 722),
	line(200, 712, 240, 752),
	line(240, 752, 440, 752),
	line(440, 752, 400, 692),
	line(400, 692, 490, 692),
	line(490, 692, 530, 752),
	line(530, 752, 570, 702),
	line(570, 702, 570, 362),
	line(570, 362, 520, 322),
	line(520, 322, 250, 322),
	line(250, 322, 200, 362),
	cubic(200, 362, 198, 474, 201, 680, 200, 712),
}

// glyphDigitOne is the outline of '1': a diagonal flag and a stem.
var glyphDigitOne = []Segment{
	line(150, 450, 350, 150),
	line(350, 150, 350, 850),
}
