// This file is part of Gopher8051.
//
// Gopher8051 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8051 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8051.  If not, see <https://www.gnu.org/licenses/>.

package porttrace

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/hardware/clocks"
	"github.com/gopher8051/gopher8051/hardware/ports"
	"github.com/gopher8051/gopher8051/logger"
)

// MaxSamples is the maximum number of samples held by a Recorder. Samples
// after the maximum has been reached are dropped.
const MaxSamples = 1 << 24

// WAV format for PCM data
const pcmFormat = 1

// Latches is the source of the port output latches.
type Latches interface {
	OutputLatch(port ports.Port) uint8
}

// Recorder implements the scheduler.Observer interface.
type Recorder struct {
	filename   string
	latches    Latches
	sampleRate int

	// four interleaved samples per retired instruction
	data    []uint8
	dropped bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. The sample rate of the WAV file is the nominal instruction rate for
// the oscillator frequency.
func NewRecorder(filename string, latches Latches, hz int) (*Recorder, error) {
	if filename == "" {
		return nil, curated.Errorf("porttrace: %v", "no filename")
	}

	rate := hz / (clocks.PerMachineCycle)
	if rate <= 0 {
		return nil, curated.Errorf("porttrace: %v", "bad oscillator frequency")
	}

	return &Recorder{
		filename:   filename,
		latches:    latches,
		sampleRate: rate,
	}, nil
}

// Tick implements the scheduler.Observer interface.
func (rec *Recorder) Tick(retired bool) {
	if !retired {
		return
	}

	if len(rec.data) >= MaxSamples*ports.NumPorts {
		if !rec.dropped {
			logger.Logf(logger.Allow, "porttrace", "maximum of %d samples reached", MaxSamples)
			rec.dropped = true
		}
		return
	}

	for p := ports.P0; p < ports.NumPorts; p++ {
		rec.data = append(rec.data, rec.latches.OutputLatch(p))
	}
}

// Samples returns the number of samples recorded so far.
func (rec *Recorder) Samples() int {
	return len(rec.data) / ports.NumPorts
}

// End writes the samples to disk.
func (rec *Recorder) End() (rerr error) {
	f, err := os.Create(rec.filename)
	if err != nil {
		return curated.Errorf("porttrace: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("porttrace: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, rec.sampleRate, 8, ports.NumPorts, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: ports.NumPorts,
			SampleRate:  rec.sampleRate,
		},
		Data:           make([]int, len(rec.data)),
		SourceBitDepth: 8,
	}
	for i, v := range rec.data {
		buf.Data[i] = int(v)
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("porttrace: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("porttrace: %v", err)
	}

	logger.Logf(logger.Allow, "porttrace", "%d samples written to %s", rec.Samples(), rec.filename)

	return nil
}
