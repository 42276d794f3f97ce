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

// Package pp16 builds PP16 frames for graphic electronic shelf labels and
// encodes them into pulse sequences for a pulse capable output peripheral.
//
// Everything in the package is a pure function of its arguments. Frames and
// pulse sequences are plain values, so the functions may be called
// concurrently without coordination. Sending pulses one frame at a time is
// the job of the transmitter (see package transmit).
package pp16
