package seisplot

import (
	"fmt"
	"testing"

	seis "github.com/goseis/goseis"
)

//TestStationMap draws the testing network with its epicenter and saves the
//result, which has to be inspected by eye.
func TestStationMap(Te *testing.T) {
	s, err := seis.StationsFileRead("../test/STATIONS")
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := seis.CMTSolutionFileRead("../test/CMTSOLUTION")
	if err != nil {
		Te.Fatal(err)
	}
	p, err := StationMap(s, ev)
	if err != nil {
		Te.Fatal(err)
	}
	if err := Save(p, "../test/stationmap.png"); err != nil {
		Te.Fatal(err)
	}
	fmt.Println("map saved for", s.Len(), "stations")
}

//TestDistanceProfile draws distance against burial for the testing network.
func TestDistanceProfile(Te *testing.T) {
	s, err := seis.StationsFileRead("../test/STATIONS")
	if err != nil {
		Te.Fatal(err)
	}
	ev, err := seis.CMTSolutionFileRead("../test/CMTSOLUTION")
	if err != nil {
		Te.Fatal(err)
	}
	p, err := DistanceProfile(s, ev)
	if err != nil {
		Te.Fatal(err)
	}
	if err := Save(p, "../test/distances.png"); err != nil {
		Te.Fatal(err)
	}
}

//TestBadInput makes sure the plotters reject what they can't draw.
func TestBadInput(Te *testing.T) {
	if _, err := StationMap(nil, nil); err == nil {
		Te.Error("a nil station set got plotted")
	} else if e, ok := err.(Error); !ok || e.Kind() != seis.ErrArgument {
		Te.Error("wrong error for a nil set", err)
	}
	if _, err := StationMap(new(seis.StationSet), nil); err == nil {
		Te.Error("an empty station set got plotted")
	}
	s := new(seis.StationSet)
	s.Append(&seis.Station{Station: "PFO", Network: "II"})
	if _, err := DistanceProfile(s, nil); err == nil {
		Te.Error("a profile without an event got plotted")
	}
	if err := Save(nil, "../test/nothing.png"); err == nil {
		Te.Error("a nil plot got saved")
	}
}
