package pd

// Stock creation arguments for GUI classes, matching what the vanilla save
// format writes. Creating an object with these makes it come up with the
// right geometry and labels straight away.
var guiDefaults = map[string]string{
	"tgl":       "25 0 empty empty empty 17 7 0 10 bgColour fgColour lblColour 0 1",
	"hsl":       "128 17 0 127 0 0 empty empty empty -2 -8 0 10 bgColour fgColour lblColour 0 1",
	"vsl":       "17 128 0 127 0 0 empty empty empty 0 -9 0 10 bgColour fgColour lblColour 0 1",
	"bng":       "25 250 50 0 empty empty empty 17 7 0 10 bgColour fgColour lblColour",
	"nbx":       "4 18 -1e+37 1e+37 0 0 empty empty empty 0 -8 0 10 bgColour lblColour lblColour 0 256",
	"hradio":    "20 1 0 8 empty empty empty 0 -8 0 10 bgColour fgColour lblColour 0",
	"vradio":    "20 1 0 8 empty empty empty 0 -8 0 10 bgColour fgColour lblColour 0",
	"cnv":       "15 100 60 empty empty empty 20 12 0 14 lnColour lblColour",
	"vu":        "20 120 empty empty -1 -8 0 10 bgColour lblColour 1 0",
	"floatatom": "5 0 0 0 empty - - 12",
	"listbox":   "9 0 0 0 empty - - 0",
	"numbox~":   "4 16 100 bgColour fgColour 10 0 0 0",
	"button":    "25 25 bgColour_rgb fgColour_rgb",
	"scope~":    "130 130 256 3 128 -1 1 0 0 0 0 fgColour_rgb bgColour_rgb lnColour_rgb 0 empty",
	"function":  "200 100 empty empty 0 1 bgColour_rgb lblColour_rgb 0 0 0 0 0 1000 0",
}

// Default pixel sizes per GUI class, {width, height}.
var guiSizes = map[string][2]int{
	"tgl":      {25, 25},
	"bng":      {25, 25},
	"button":   {25, 25},
	"hsl":      {128, 17},
	"vsl":      {17, 128},
	"nbx":      {56, 22},
	"numbox~":  {56, 22},
	"hradio":   {160, 20},
	"vradio":   {20, 160},
	"cnv":      {100, 60},
	"vu":       {20, 120},
	"scope~":   {130, 130},
	"function": {200, 100},
}
