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

package transmit

import (
	"fmt"
)

type ErrBitmapTooShort struct {
	Need int
	Got  int
}

func (e ErrBitmapTooShort) Error() string {
	return fmt.Sprintf("Bitmap is too short: need %d bytes, got %d", e.Need, e.Got)
}

type ErrImageTooLarge struct {
	Size int
}

func (e ErrImageTooLarge) Error() string {
	return fmt.Sprintf("Image of %d bytes does not fit the 16-bit length field", e.Size)
}

// ErrTransmit wraps a transmitter failure with the step it happened at
type ErrTransmit struct {
	Step string
	Err  error
}

func (e ErrTransmit) Error() string {
	return fmt.Sprintf("Error while transmitting %s frame: %s", e.Step, e.Err)
}

func (e ErrTransmit) Unwrap() error {
	return e.Err
}

type ErrMQTTTimeout struct {
	Op     string
	Target string
}

func (e ErrMQTTTimeout) Error() string {
	return fmt.Sprintf("MQTT %s timed out: %s", e.Op, e.Target)
}
