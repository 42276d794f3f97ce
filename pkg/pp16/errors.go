/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package pp16

import (
	"fmt"
)

// ErrInvalidPLID is returned when a label id can not be parsed
type ErrInvalidPLID struct {
	Value string
	What  string
}

func (e ErrInvalidPLID) Error() string {
	return fmt.Sprintf("Invalid PLID %q: %s", e.Value, e.What)
}

// ErrTickRate is returned for a peripheral clock scale the pulse words can not hold
type ErrTickRate struct {
	TicksPerMicrosecond uint16
}

func (e ErrTickRate) Error() string {
	return fmt.Sprintf("Tick rate %d ticks/us is out of range 1..%d", e.TicksPerMicrosecond, MaxTicksPerMicrosecond)
}
